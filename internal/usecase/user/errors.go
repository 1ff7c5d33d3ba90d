// Package user provides use cases for managing authors and back-office
// operators.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates that another live user already registered
	// the email address.
	ErrDuplicateEmail = errors.New("user with this email already exists")
)
