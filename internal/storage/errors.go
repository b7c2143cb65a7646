package storage

import "errors"

var (
	ErrNotFound = errors.New("key not found")
	ErrStorage  = errors.New("storage failure")
)
