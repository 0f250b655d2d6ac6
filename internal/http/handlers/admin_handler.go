// Admin HTTP handlers.
//
// This file exposes the back-office endpoints:
//   - POST /admin/login                            (password → session token)
//   - POST /admin/session/extend                   (reissue a fresh token)
//   - GET  /admin/session                          (remaining lifetime)
//   - GET  /admin/contact-requests                 (newest-first list)
//   - GET  /admin/appointment-requests             (newest-first list)
//   - PUT  /admin/contact-requests/:id/status      (triage update)
//   - PUT  /admin/appointment-requests/:id/status  (triage update)
//
// Everything except login sits behind the AdminAuth middleware. Status
// vocabularies are narrowed per kind here, at the transport edge; the
// service layer below accepts any non-empty status.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/garage-routhier/go-garage-backend/internal/auth"
	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/http/middleware"
	"github.com/garage-routhier/go-garage-backend/internal/repo"
	"github.com/garage-routhier/go-garage-backend/internal/services"
	"github.com/garage-routhier/go-garage-backend/internal/utils"
)

// ReviewService defines the admin review operations consumed by the HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type ReviewService interface {
	ListContactRequests(ctx context.Context) ([]domain.ContactRequest, error)
	ListAppointmentRequests(ctx context.Context) ([]domain.AppointmentRequest, error)
	UpdateContactStatus(ctx context.Context, id, status, notes string) (*domain.ContactRequest, error)
	UpdateAppointmentStatus(ctx context.Context, id, status, notes string) (*domain.AppointmentRequest, error)
}

// LoginRequest is the JSON payload for POST /admin/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries a session token and its expiry.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStatusResponse reports the remaining lifetime of the current
// session.
type SessionStatusResponse struct {
	ExpiresAt   time.Time `json:"expires_at"`
	RemainingMS int64     `json:"remaining_ms"`
}

// ContactStatusUpdateRequest is the JSON payload for contact triage
// updates. Notes always overwrite the stored value; omitting them clears.
type ContactStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress resolved"`
	Notes  string `json:"notes"`
}

// AppointmentStatusUpdateRequest is the appointment counterpart, with its
// own status vocabulary.
type AppointmentStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=new confirmed cancelled"`
	Notes  string `json:"notes"`
}

// ContactListResponse wraps the admin contact listing.
type ContactListResponse struct {
	Requests []domain.ContactRequest `json:"requests"`
	Count    int                     `json:"count"`
}

// AppointmentListResponse wraps the admin appointment listing.
type AppointmentListResponse struct {
	Requests []domain.AppointmentRequest `json:"requests"`
	Count    int                         `json:"count"`
}

// Login handles POST /admin/login.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "password required")
		return
	}

	sess, err := h.sessions.Login(req.Password)
	if err != nil {
		// Always the same answer for a wrong password, no detail to probe.
		fail(c, http.StatusUnauthorized, ErrCodeInvalidPassword, "invalid password")
		return
	}

	middleware.LoggerFrom(c).Info().Time("expires_at", sess.ExpiresAt).Msg("admin login")
	ok(c, http.StatusOK, SessionResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// ExtendSession handles POST /admin/session/extend. The gate middleware has
// already verified the token; a fresh one is issued for the full duration.
func (h *Handlers) ExtendSession(c *gin.Context) {
	cur, ok2 := middleware.SessionFrom(c)
	if !ok2 {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no active session")
		return
	}

	sess, err := h.sessions.Extend(cur.Token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			fail(c, http.StatusUnauthorized, ErrCodeSessionExpired, "session expired, please log in again")
			return
		}
		fail(c, http.StatusUnauthorized, ErrCodeInvalidToken, "invalid session token")
		return
	}

	ok(c, http.StatusOK, SessionResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// SessionStatus handles GET /admin/session.
func (h *Handlers) SessionStatus(c *gin.Context) {
	sess, ok2 := middleware.SessionFrom(c)
	if !ok2 {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no active session")
		return
	}

	ok(c, http.StatusOK, SessionStatusResponse{
		ExpiresAt:   sess.ExpiresAt,
		RemainingMS: sess.Remaining(time.Now()).Milliseconds(),
	})
}

// listLimit parses the optional ?limit= query parameter, bounded by the
// store's default page size.
func listLimit(c *gin.Context) int {
	return utils.ClampLimit(
		utils.AtoiDefault(c.Query("limit"), repo.DefaultListLimit),
		repo.DefaultListLimit,
		repo.DefaultListLimit,
	)
}

// ListContactRequests handles GET /admin/contact-requests.
func (h *Handlers) ListContactRequests(c *gin.Context) {
	items, err := h.review.ListContactRequests(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list contact requests")
		return
	}
	if limit := listLimit(c); len(items) > limit {
		items = items[:limit]
	}
	ok(c, http.StatusOK, ContactListResponse{Requests: items, Count: len(items)})
}

// ListAppointmentRequests handles GET /admin/appointment-requests.
func (h *Handlers) ListAppointmentRequests(c *gin.Context) {
	items, err := h.review.ListAppointmentRequests(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list appointment requests")
		return
	}
	if limit := listLimit(c); len(items) > limit {
		items = items[:limit]
	}
	ok(c, http.StatusOK, AppointmentListResponse{Requests: items, Count: len(items)})
}

// UpdateContactStatus handles PUT /admin/contact-requests/:id/status.
func (h *Handlers) UpdateContactStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request id must be a UUID")
		return
	}

	var req ContactStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be one of: new, in_progress, resolved")
		return
	}

	rec, err := h.review.UpdateContactStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		failUpdate(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

// UpdateAppointmentStatus handles PUT /admin/appointment-requests/:id/status.
func (h *Handlers) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request id must be a UUID")
		return
	}

	var req AppointmentStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be one of: new, confirmed, cancelled")
		return
	}

	rec, err := h.review.UpdateAppointmentStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		failUpdate(c, err)
		return
	}
	ok(c, http.StatusOK, rec)
}

func failUpdate(c *gin.Context, err error) {
	if errors.Is(err, services.ErrRequestNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, "could not update request")
}
