package resume

import "errors"

var (
	ErrNotFound      = errors.New("resume not found")
	ErrForbidden     = errors.New("resume owned by another user")
	ErrInvalidInput  = errors.New("invalid input")
	ErrQuotaExceeded = errors.New("resume quota exceeded")
)
