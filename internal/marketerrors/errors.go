package marketerrors

import "errors"

// Repository-level errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Business logic errors
var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidMode = errors.New("bidding only on auction listings")
	ErrValidation  = errors.New("validation failed")
)

// Account errors
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
