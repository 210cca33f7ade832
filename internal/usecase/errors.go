package usecase

import "errors"

// Base errors every entity-specific sentinel wraps. Handlers only need
// errors.Is against these two to pick the HTTP status: validation failures
// become 400, missing records become 404, anything else is a backend failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
