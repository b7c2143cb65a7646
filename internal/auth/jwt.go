package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the payload of an access token.
type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// NewClaims creates claims for identity valid until expiresAt.
func NewClaims(identity Identity, issuer string, expiresAt time.Time) *Claims {
	now := time.Now()

	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID:  identity.ID,
		Email:   identity.Email,
		IsAdmin: identity.IsAdmin,
	}
}

// Validate implements jwt.ClaimsValidator. It runs after the registered
// claims checks and rejects tokens without an identity.
func (c *Claims) Validate() error {
	if c.UserID == "" || c.Email == "" {
		return ErrTokenInvalid
	}

	return nil
}

func (c *Claims) identity() Identity {
	return Identity{
		ID:      c.UserID,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
	}
}

var _ jwt.ClaimsValidator = (*Claims)(nil)
