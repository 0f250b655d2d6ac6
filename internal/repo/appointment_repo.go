// Package repo implements the data persistence layer for the request
// collections, backed by GORM. This file provides repository functions for
// the AppointmentRequest collection. Error semantics match contact_repo.go.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
)

// CreateAppointment inserts a new appointment request with a fresh UUID,
// UTC creation time, and initial status "new".
func CreateAppointment(ctx context.Context, db *gorm.DB, rec *domain.AppointmentRequest) (*domain.AppointmentRequest, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.Status = domain.AppointmentStatusNew
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListAppointments returns up to limit appointment requests ordered by
// creation time descending. A limit <= 0 falls back to DefaultListLimit.
// It returns an empty slice, never nil, when the collection is empty.
func ListAppointments(ctx context.Context, db *gorm.DB, limit int) ([]domain.AppointmentRequest, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	out := make([]domain.AppointmentRequest, 0, limit)
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountAppointments returns the total number of appointment requests.
func CountAppointments(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AppointmentRequest{}).
		Count(&total).Error
	return total, err
}

// GetAppointment fetches a single appointment request by ID, returning
// ErrNotFound if it does not exist.
func GetAppointment(ctx context.Context, db *gorm.DB, id string) (*domain.AppointmentRequest, error) {
	var rec domain.AppointmentRequest
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateAppointmentStatus overwrites the status and notes of the appointment
// request identified by id and returns the updated record. Notes are always
// written; an empty string clears stored notes. Unknown id returns
// ErrNotFound. Status is not validated against the vocabulary at this layer.
func UpdateAppointmentStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.AppointmentRequest, error) {
	res := db.WithContext(ctx).
		Model(&domain.AppointmentRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "notes": notes})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetAppointment(ctx, db, id)
}
