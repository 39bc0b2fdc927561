package staff

import "errors"

var (
	ErrNotFound    = errors.New("profile not found")
	ErrInvalidRole = errors.New("invalid staff role")
)
