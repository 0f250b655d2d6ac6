package handlers

import (
	"github.com/garage-routhier/go-garage-backend/internal/auth"
)

// Handlers groups the HTTP endpoints for intake, the admin session, and the
// admin review flow. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	intake   IntakeService
	review   ReviewService
	sessions *auth.Manager
}

// New constructs a Handlers instance bound to the given services.
func New(intake IntakeService, review ReviewService, sessions *auth.Manager) *Handlers {
	return &Handlers{intake: intake, review: review, sessions: sessions}
}
