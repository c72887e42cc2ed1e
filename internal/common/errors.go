// Package common defines shared constants and sentinel errors used across
// PlanIt client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors surfaced to clients as 400s.
	ErrorEmailPasswordRequired = errors.New("email and password are required")
	ErrorEmailExists           = errors.New("an account with this email already exists")
	ErrorTitleRequired         = errors.New("title is required")
	ErrorInvalidDay            = errors.New("day must be between 0 and 6")

	// Credential errors. Unknown email and wrong password share one value
	// so login failures carry no user-enumeration signal.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Bearer header errors.
	ErrorMissingAuthHeader = errors.New("missing or malformed authorization header")

	// Account referenced by a valid token no longer exists.
	ErrorAccountNotFound = errors.New("account not found")
)
