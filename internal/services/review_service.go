// Package services – ReviewService
//
// This file implements the ReviewService behind the admin view: bounded
// newest-first listings of both collections and status/notes updates. The
// status value is deliberately not validated against the kind's vocabulary
// here; the transport layer narrows it at the edge.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/repo"
)

// ReviewStore defines the persistence contract required by ReviewService.
type ReviewStore interface {
	// ListContacts returns up to limit contact requests, newest first.
	ListContacts(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error)

	// ListAppointments returns up to limit appointment requests, newest first.
	ListAppointments(ctx context.Context, db *gorm.DB, limit int) ([]domain.AppointmentRequest, error)

	// UpdateContactStatus overwrites status and notes, ErrNotFound on unknown id.
	UpdateContactStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.ContactRequest, error)

	// UpdateAppointmentStatus overwrites status and notes, ErrNotFound on unknown id.
	UpdateAppointmentStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.AppointmentRequest, error)
}

// ReviewService lists pending requests and applies triage updates.
type ReviewService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Store is the request store used by this service.
	Store ReviewStore
	// PageLimit bounds list results; zero falls back to the store default.
	PageLimit int
}

// NewReviewService constructs a ReviewService with the standard page bound.
func NewReviewService(db *gorm.DB, store ReviewStore) *ReviewService {
	return &ReviewService{DB: db, Store: store, PageLimit: repo.DefaultListLimit}
}

// ListContactRequests returns up to PageLimit contact requests ordered by
// creation time descending. The result is never nil.
func (s *ReviewService) ListContactRequests(ctx context.Context) ([]domain.ContactRequest, error) {
	return s.Store.ListContacts(ctx, s.DB, s.PageLimit)
}

// ListAppointmentRequests returns up to PageLimit appointment requests
// ordered by creation time descending. The result is never nil.
func (s *ReviewService) ListAppointmentRequests(ctx context.Context) ([]domain.AppointmentRequest, error) {
	return s.Store.ListAppointments(ctx, s.DB, s.PageLimit)
}

// UpdateContactStatus overwrites the status and notes of a contact request
// and returns the updated record. Unknown ids yield ErrRequestNotFound.
func (s *ReviewService) UpdateContactStatus(ctx context.Context, id, status, notes string) (*domain.ContactRequest, error) {
	rec, err := s.Store.UpdateContactStatus(ctx, s.DB, id, status, notes)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return rec, nil
}

// UpdateAppointmentStatus overwrites the status and notes of an appointment
// request and returns the updated record. Unknown ids yield ErrRequestNotFound.
func (s *ReviewService) UpdateAppointmentStatus(ctx context.Context, id, status, notes string) (*domain.AppointmentRequest, error) {
	rec, err := s.Store.UpdateAppointmentStatus(ctx, s.DB, id, status, notes)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return rec, nil
}
