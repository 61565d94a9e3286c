package service

import "errors"

// Domain errors; handlers map these to HTTP status codes.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	ErrChecklistNotFound = errors.New("checklist not found")
	ErrItemNotFound      = errors.New("todo item not found")
	ErrNotOwner          = errors.New("resource belongs to another user")
)
