package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email address already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidFullName    = errors.New("full name is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrGoogleDisabled     = errors.New("google sign-in is not enabled")
	ErrGoogleExchange     = errors.New("google authorization code exchange failed")
)
