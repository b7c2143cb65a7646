package passwords

import "errors"

var (
	ErrNotFound   = errors.New("password record not found")
	ErrValidation = errors.New("validation failed")
)
