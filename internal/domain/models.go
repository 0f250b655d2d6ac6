// Package domain defines the persistence models for the two intake
// collections (contact requests, appointment requests), their status
// vocabularies, and the fixed service catalog. These types are mapped with
// GORM and form the core data layer of the garage backend.
package domain

import "time"

// Contact request statuses. The vocabulary is fixed; no other package may
// widen the set.
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResolved   = "resolved"
)

// Appointment request statuses. Distinct vocabulary from contact requests.
const (
	AppointmentStatusNew       = "new"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// ContactStatuses returns the allowed contact request statuses.
func ContactStatuses() []string {
	return []string{ContactStatusNew, ContactStatusInProgress, ContactStatusResolved}
}

// AppointmentStatuses returns the allowed appointment request statuses.
func AppointmentStatuses() []string {
	return []string{AppointmentStatusNew, AppointmentStatusConfirmed, AppointmentStatusCancelled}
}

// ValidContactStatus reports whether s belongs to the contact vocabulary.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved:
		return true
	}
	return false
}

// ValidAppointmentStatus reports whether s belongs to the appointment vocabulary.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusNew, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Services is the fixed catalog offered on the booking form.
var Services = []string{
	"Réparation Mécanique",
	"Entretien Périodique",
	"Freinage & Sécurité",
	"Électricité Auto",
}

// ContactSubjects is the recommended (but unenforced) set of contact form
// subjects. Free text outside this list is accepted.
var ContactSubjects = []string{
	"Demande de devis",
	"Prise de rendez-vous",
	"Demande d'information",
	"Urgence",
}

// ValidService reports whether s is part of the service catalog.
func ValidService(s string) bool {
	for _, v := range Services {
		if v == s {
			return true
		}
	}
	return false
}

// ContactRequest represents a message submitted via the contact form.
// Identifier, requester identity fields, and CreatedAt are immutable after
// creation; only Status and Notes are mutated (by the admin review flow).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Nom / Prenom: requester surname and first name.
//   - Email: requester email, confirmation recipient.
//   - Telephone: optional callback number.
//   - Sujet: free-text subject (see ContactSubjects for the suggested set).
//   - Message: message body.
//   - Status: triage state, one of the ContactStatus* constants.
//   - Notes: optional internal notes added during review.
type ContactRequest struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Nom       string    `json:"nom"        gorm:"type:varchar(100);not null"`
	Prenom    string    `json:"prenom"     gorm:"type:varchar(100);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Telephone string    `json:"telephone,omitempty" gorm:"type:varchar(32)"`
	Sujet     string    `json:"sujet"      gorm:"type:varchar(255);not null"`
	Message   string    `json:"message"    gorm:"type:text"`
	Status    string    `json:"status"     gorm:"type:varchar(16);not null;default:'new';index"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for ContactRequest.
func (ContactRequest) TableName() string { return "contact_requests" }

// AppointmentRequest represents a booking submitted via the appointment
// dialog. Same creation/mutation/lifecycle rules as ContactRequest, with a
// distinct status vocabulary and a service drawn from the fixed catalog.
type AppointmentRequest struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Nom       string    `json:"nom"        gorm:"type:varchar(100);not null"`
	Prenom    string    `json:"prenom"     gorm:"type:varchar(100);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Telephone string    `json:"telephone,omitempty" gorm:"type:varchar(32)"`
	Service   string    `json:"service"    gorm:"type:varchar(255);not null"`
	Message   string    `json:"message,omitempty" gorm:"type:text"`
	Status    string    `json:"status"     gorm:"type:varchar(16);not null;default:'new';index"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for AppointmentRequest.
func (AppointmentRequest) TableName() string { return "appointment_requests" }
