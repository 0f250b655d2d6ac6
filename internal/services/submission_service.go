// Package services – SubmissionService
//
// This file implements the SubmissionService, which takes validated form
// payloads through the intake sequence: persist the record, notify the
// garage, confirm to the requester. The three side effects run sequentially
// and are not atomic; a failure after persistence leaves the record in
// place (see SubmissionError). Service-level errors (ValidationError,
// SubmissionError) are returned for predictable cases so handlers can map
// them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/mail"
)

// SubmissionStore defines the persistence contract required by
// SubmissionService. Implementations assign the identifier, creation time,
// and initial status.
type SubmissionStore interface {
	// CreateContact inserts a new contact request row.
	CreateContact(ctx context.Context, db *gorm.DB, rec *domain.ContactRequest) (*domain.ContactRequest, error)

	// CreateAppointment inserts a new appointment request row.
	CreateAppointment(ctx context.Context, db *gorm.DB, rec *domain.AppointmentRequest) (*domain.AppointmentRequest, error)
}

// ContactInput is the contact form payload. Nom, Prenom, Email, and Sujet
// are required; Telephone and Message are optional.
type ContactInput struct {
	Nom       string
	Prenom    string
	Email     string
	Telephone string
	Sujet     string
	Message   string
}

// AppointmentInput is the booking form payload. Nom, Prenom, Email, and
// Service are required; Telephone and Message are optional.
type AppointmentInput struct {
	Nom       string
	Prenom    string
	Email     string
	Telephone string
	Service   string
	Message   string
}

// SubmissionResult reports the outcome of a successful submission.
type SubmissionResult struct {
	// ID is the identifier assigned to the stored request.
	ID string
	// OwnerNotified is true when the garage notification was delivered.
	OwnerNotified bool
	// RequesterNotified is true when the requester confirmation was delivered.
	RequesterNotified bool
}

// SubmissionService validates intake payloads and runs the
// persist-then-notify sequence. It is safe for concurrent use.
type SubmissionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the request store used by this service.
	Store SubmissionStore
	// Mailer delivers the two outbound emails per submission.
	Mailer mail.Sender
	// Templates builds the notification and confirmation messages.
	Templates mail.Templates
}

// SubmitContact validates in, persists a contact request, and sends the two
// notification emails.
//
// Semantics:
//   - Required fields empty or blank after trimming → ValidationError listing
//     them; nothing is persisted, no email is sent.
//   - Persistence failure → SubmissionError{Stage: persist}, no emails sent.
//   - Email failure after persistence → SubmissionError with the failing
//     stage and the assigned ID; the record stays (at-least-persisted).
//   - Success → SubmissionResult with both notified flags set.
//
// Two emails are sent per successful call; retrying a successful submission
// stores a second record and sends two more emails.
func (s *SubmissionService) SubmitContact(ctx context.Context, in ContactInput) (*SubmissionResult, error) {
	missing := missingFields(map[string]string{
		"nom":    in.Nom,
		"prenom": in.Prenom,
		"email":  in.Email,
		"sujet":  in.Sujet,
	})
	if len(missing) > 0 {
		return nil, ValidationError{Missing: missing}
	}

	rec := &domain.ContactRequest{
		Nom:       strings.TrimSpace(in.Nom),
		Prenom:    strings.TrimSpace(in.Prenom),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Sujet:     strings.TrimSpace(in.Sujet),
		Message:   strings.TrimSpace(in.Message),
	}

	stored, err := s.Store.CreateContact(ctx, s.DB, rec)
	if err != nil {
		return nil, SubmissionError{Stage: StagePersist, Err: err}
	}

	if err := s.Mailer.Send(ctx, s.Templates.ContactOwnerNotice(stored)); err != nil {
		return nil, SubmissionError{Stage: StageNotifyOwner, ID: stored.ID, Err: err}
	}
	if err := s.Mailer.Send(ctx, s.Templates.ContactConfirmation(stored)); err != nil {
		return nil, SubmissionError{Stage: StageConfirm, ID: stored.ID, Err: err}
	}

	return &SubmissionResult{ID: stored.ID, OwnerNotified: true, RequesterNotified: true}, nil
}

// SubmitAppointment is the appointment counterpart of SubmitContact, with
// Service required instead of Sujet. Same sequencing and error semantics.
func (s *SubmissionService) SubmitAppointment(ctx context.Context, in AppointmentInput) (*SubmissionResult, error) {
	missing := missingFields(map[string]string{
		"nom":     in.Nom,
		"prenom":  in.Prenom,
		"email":   in.Email,
		"service": in.Service,
	})
	if len(missing) > 0 {
		return nil, ValidationError{Missing: missing}
	}

	rec := &domain.AppointmentRequest{
		Nom:       strings.TrimSpace(in.Nom),
		Prenom:    strings.TrimSpace(in.Prenom),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Service:   strings.TrimSpace(in.Service),
		Message:   strings.TrimSpace(in.Message),
	}

	stored, err := s.Store.CreateAppointment(ctx, s.DB, rec)
	if err != nil {
		return nil, SubmissionError{Stage: StagePersist, Err: err}
	}

	if err := s.Mailer.Send(ctx, s.Templates.AppointmentOwnerNotice(stored)); err != nil {
		return nil, SubmissionError{Stage: StageNotifyOwner, ID: stored.ID, Err: err}
	}
	if err := s.Mailer.Send(ctx, s.Templates.AppointmentConfirmation(stored)); err != nil {
		return nil, SubmissionError{Stage: StageConfirm, ID: stored.ID, Err: err}
	}

	return &SubmissionResult{ID: stored.ID, OwnerNotified: true, RequesterNotified: true}, nil
}

// missingFields returns the names of fields whose values are empty after
// trimming, in a stable order.
func missingFields(fields map[string]string) []string {
	order := []string{"nom", "prenom", "email", "sujet", "service"}
	var missing []string
	for _, name := range order {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
