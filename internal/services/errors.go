// Package services defines the business logic for form submissions and
// admin review. This file centralizes service-level error types so that they
// can be consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequestNotFound indicates that an admin update referenced an identifier
// that does not exist in the targeted collection.
var ErrRequestNotFound = errors.New("request not found")

// Submission stages, used to tell a total failure (nothing stored) from a
// partial one (stored but one or both notifications failed).
const (
	StagePersist     = "persist"
	StageNotifyOwner = "notify_owner"
	StageConfirm     = "confirm"
)

// ValidationError reports the required form fields that were empty or blank.
// When returned, no persistence or notification has been attempted.
type ValidationError struct {
	Missing []string
}

func (e ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// SubmissionError wraps a failed side effect of a valid submission.
//
// Stage records which step failed. ID is non-empty when the record was
// already persisted before the failure (the at-least-persisted outcome):
// callers can surface the identifier even though notifications were not
// fully delivered. Nothing is rolled back.
type SubmissionError struct {
	Stage string
	ID    string
	Err   error
}

func (e SubmissionError) Error() string {
	return fmt.Sprintf("submission failed at %s: %v", e.Stage, e.Err)
}

func (e SubmissionError) Unwrap() error { return e.Err }

// Persisted reports whether the request record survived the failure.
func (e SubmissionError) Persisted() bool { return e.ID != "" }
