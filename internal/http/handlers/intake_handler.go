// Intake HTTP handlers.
//
// This file exposes the public endpoints of the marketing site:
//   - POST /contact-requests      (contact form)
//   - POST /appointment-requests  (booking dialog)
//   - GET  /services              (workshop service catalog)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/http/middleware"
	"github.com/garage-routhier/go-garage-backend/internal/services"
)

// IntakeService defines the submission operations consumed by the public
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type IntakeService interface {
	// SubmitContact validates and stores a contact request, then sends the
	// notification and confirmation emails.
	SubmitContact(ctx context.Context, in services.ContactInput) (*services.SubmissionResult, error)
	// SubmitAppointment is the booking counterpart of SubmitContact.
	SubmitAppointment(ctx context.Context, in services.AppointmentInput) (*services.SubmissionResult, error)
}

// ContactFormRequest is the JSON payload of the contact form.
type ContactFormRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Sujet     string `json:"sujet"`
	Message   string `json:"message"`
}

// AppointmentFormRequest is the JSON payload of the booking dialog.
type AppointmentFormRequest struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// SubmissionResponse confirms an accepted submission.
type SubmissionResponse struct {
	ID                string `json:"id"`
	OwnerNotified     bool   `json:"owner_notified"`
	RequesterNotified bool   `json:"requester_notified"`
}

// ServicesResponse lists the workshop catalog and the suggested contact
// subjects, as consumed by the site's forms.
type ServicesResponse struct {
	Services []string `json:"services"`
	Sujets   []string `json:"sujets"`
}

// SubmitContact handles POST /contact-requests. Accepted submissions return
// 202 with the stored identifier and both notified flags.
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.intake.SubmitContact(c.Request.Context(), services.ContactInput{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Email:     req.Email,
		Telephone: req.Telephone,
		Sujet:     req.Sujet,
		Message:   req.Message,
	})
	if err != nil {
		middleware.CountSubmission("contact", submissionOutcome(err))
		failSubmission(c, err)
		return
	}

	middleware.CountSubmission("contact", "accepted")
	ok(c, http.StatusAccepted, SubmissionResponse{
		ID:                res.ID,
		OwnerNotified:     res.OwnerNotified,
		RequesterNotified: res.RequesterNotified,
	})
}

// SubmitAppointment handles POST /appointment-requests, mirroring
// SubmitContact.
func (h *Handlers) SubmitAppointment(c *gin.Context) {
	var req AppointmentFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.intake.SubmitAppointment(c.Request.Context(), services.AppointmentInput{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Email:     req.Email,
		Telephone: req.Telephone,
		Service:   req.Service,
		Message:   req.Message,
	})
	if err != nil {
		middleware.CountSubmission("appointment", submissionOutcome(err))
		failSubmission(c, err)
		return
	}

	middleware.CountSubmission("appointment", "accepted")
	ok(c, http.StatusAccepted, SubmissionResponse{
		ID:                res.ID,
		OwnerNotified:     res.OwnerNotified,
		RequesterNotified: res.RequesterNotified,
	})
}

// ListServices handles GET /services.
func (h *Handlers) ListServices(c *gin.Context) {
	ok(c, http.StatusOK, ServicesResponse{
		Services: domain.Services,
		Sujets:   domain.ContactSubjects,
	})
}

// failSubmission maps service-layer submission errors onto the envelope.
// The failing stage is logged, not leaked; clients only learn whether the
// request was stored.
func failSubmission(c *gin.Context, err error) {
	var verr services.ValidationError
	if errors.As(err, &verr) {
		fail(c, http.StatusBadRequest, ErrCodeValidationFailed,
			"missing required fields: "+strings.Join(verr.Missing, ", "))
		return
	}

	var serr services.SubmissionError
	if errors.As(err, &serr) {
		middleware.LoggerFrom(c).Error().
			Str("stage", serr.Stage).
			Str("stored_id", serr.ID).
			Err(serr.Err).
			Msg("submission failed")
		msg := "submission failed, please try again later"
		if serr.Persisted() {
			msg = "request stored but notification failed"
		}
		fail(c, http.StatusBadGateway, ErrCodeSubmissionFailed, msg)
		return
	}

	fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}

func submissionOutcome(err error) string {
	var verr services.ValidationError
	if errors.As(err, &verr) {
		return "invalid"
	}
	return "failed"
}
