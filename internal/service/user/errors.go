package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("user already has a profile")
	ErrEmailExists     = errors.New("email address is already in use")
	ErrInvalidFullName = errors.New("full name must be between 1 and 255 characters")
	ErrInvalidPhone    = errors.New("invalid phone number for the specified region")
	ErrInvalidRole     = errors.New("invalid profile role")
)
