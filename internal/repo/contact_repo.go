// Package repo implements the data persistence layer for the request
// collections, backed by GORM. This file provides repository functions for
// the ContactRequest collection.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a request is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// DefaultListLimit bounds list queries when the caller passes limit <= 0.
const DefaultListLimit = 100

// CreateContact inserts a new contact request. The record ID is a randomly
// generated UUID, CreatedAt is set to UTC, and the status starts at "new".
// Any ID, CreatedAt, or Status already present on rec is overwritten.
//
// On success, it returns the persisted record. On failure, it returns a DB error.
func CreateContact(ctx context.Context, db *gorm.DB, rec *domain.ContactRequest) (*domain.ContactRequest, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.Status = domain.ContactStatusNew
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListContacts returns up to limit contact requests ordered by creation time
// descending (newest first). A limit <= 0 falls back to DefaultListLimit.
// It returns an empty slice, never nil, when the collection is empty.
func ListContacts(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	out := make([]domain.ContactRequest, 0, limit)
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountContacts returns the total number of contact requests.
func CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ContactRequest{}).
		Count(&total).Error
	return total, err
}

// GetContact fetches a single contact request by ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetContact(ctx context.Context, db *gorm.DB, id string) (*domain.ContactRequest, error) {
	var rec domain.ContactRequest
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateContactStatus overwrites the status and notes of the contact request
// identified by id and returns the updated record. Notes are always written:
// passing an empty string clears previously stored notes (the observed
// behavior of the original update call).
//
// If no rows are affected (unknown id), it returns ErrNotFound. The status
// value is not validated against the contact vocabulary at this layer.
func UpdateContactStatus(ctx context.Context, db *gorm.DB, id, status, notes string) (*domain.ContactRequest, error) {
	res := db.WithContext(ctx).
		Model(&domain.ContactRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "notes": notes})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetContact(ctx, db, id)
}
