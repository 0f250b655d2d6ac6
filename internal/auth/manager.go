// Package auth implements the password-gated admin session used by the
// back-office endpoints.
//
// There is a single shared administrator credential, compared in constant
// time against the configured password. A successful login mints a signed,
// self-contained session token (HS256 JWT) carrying only issue and expiry
// times; no server-side session state is kept. Extending a session reissues
// a fresh token for the full configured duration, so each extension resets
// the clock rather than stacking on the previous expiry.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/garage-routhier/go-garage-backend/internal/config"
)

var (
	// ErrInvalidPassword signals a login attempt with the wrong password.
	ErrInvalidPassword = errors.New("auth: invalid password")

	// ErrSessionExpired signals a well-formed token whose expiry has passed.
	ErrSessionExpired = errors.New("auth: session expired")

	// ErrInvalidToken signals a token that is malformed, unsigned, or
	// signed with the wrong key.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Session is an authenticated admin session.
type Session struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining reports how long the session stays valid from now. It never
// returns a negative duration.
func (s Session) Remaining(now time.Time) time.Duration {
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Manager issues and verifies admin session tokens.
type Manager struct {
	password []byte
	secret   []byte
	duration time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewManager builds a Manager from the admin configuration.
func NewManager(cfg config.AdminConfig) *Manager {
	return &Manager{
		password: []byte(cfg.Password),
		secret:   []byte(cfg.SessionSecret),
		duration: cfg.SessionDuration,
		now:      time.Now,
	}
}

// Login checks the supplied password and, on success, issues a session
// valid for the configured duration. Wrong passwords always return
// ErrInvalidPassword; the comparison is constant-time.
func (m *Manager) Login(password string) (Session, error) {
	if subtle.ConstantTimeCompare([]byte(password), m.password) != 1 {
		return Session{}, ErrInvalidPassword
	}
	return m.issue()
}

// Verify parses and validates a session token. Expired sessions return
// ErrSessionExpired; anything else wrong with the token returns
// ErrInvalidToken.
func (m *Manager) Verify(token string) (Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrSessionExpired
		}
		return Session{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Session{}, ErrInvalidToken
	}
	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return Session{}, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Session{}, ErrInvalidToken
	}

	return Session{Token: token, IssuedAt: iat.Time, ExpiresAt: exp.Time}, nil
}

// Extend validates the current token and reissues a fresh session for the
// full configured duration.
func (m *Manager) Extend(token string) (Session, error) {
	if _, err := m.Verify(token); err != nil {
		return Session{}, err
	}
	return m.issue()
}

func (m *Manager) issue() (Session, error) {
	iat := m.now().UTC().Truncate(time.Second)
	exp := iat.Add(m.duration)

	claims := jwt.MapClaims{
		"iat": iat.Unix(),
		"exp": exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return Session{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return Session{Token: signed, IssuedAt: iat, ExpiresAt: exp}, nil
}
