// Package mail sends the transactional emails triggered by form
// submissions: an owner notification to the garage address and a
// confirmation to the requester. Delivery goes over SMTP via gomail and is
// fire-and-forget from the caller's perspective; no delivery receipt is
// modeled.
package mail

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/garage-routhier/go-garage-backend/internal/config"
)

// Message is the transport-neutral shape handed to a Sender.
type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a single message. Implementations must honor the context
// deadline. The submission service depends on this interface so tests can
// substitute a recording stub.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Client is the SMTP-backed Sender used in production.
type Client struct {
	cfg config.SMTPConfig
}

// New creates an SMTP client from configuration. When cfg.Enabled is false
// every Send returns ErrDisabled; callers that want submissions to work
// without a mail relay should wrap the client accordingly.
func New(cfg config.SMTPConfig) *Client {
	return &Client{cfg: cfg}
}

// Send dials the configured relay and delivers m. It returns ErrDisabled
// when delivery is switched off, ErrInvalidMessage for an unusable payload,
// and ErrSend wrapping the transport failure otherwise. The SMTP exchange
// runs in a goroutine so the configured timeout and the context deadline
// both bound the wait.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled{}
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	d := c.newDialer()

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	// Respect ctx deadline if it's sooner than our config timeout.
	wait := c.cfg.Timeout
	if wait <= 0 {
		wait = 30 * time.Second
	}
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}

func (c *Client) newDialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	d.SSL = c.cfg.UseTLS

	if c.cfg.UseTLS {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return d
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage()

	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	msg.SetHeader("From", from)

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	msg.SetHeader("To", to...)

	subj := strings.TrimSpace(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""

	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
