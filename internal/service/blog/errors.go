package blog

import "errors"

var (
	ErrNotFound   = errors.New("blog post not found")
	ErrValidation = errors.New("validation failed")
)
