// Package handlers – HTTP error codes.
//
// This file centralizes the symbolic error codes used in ErrorResponse
// envelopes. Codes are lowercase snake_case; generic ones mirror HTTP status
// semantics, domain-specific ones carry business failures the status alone
// cannot express. Clients branch on these codes, not on messages.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInvalidPassword  = "invalid_password"
	ErrCodeSessionExpired   = "session_expired"
	ErrCodeInvalidToken     = "invalid_token"
	ErrCodeSubmissionFailed = "submission_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeUpdateFailed     = "update_failed"
)
