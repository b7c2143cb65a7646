package auth

import "errors"

var (
	ErrTokenMissing = errors.New("token is required")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
