package auth

import "time"

type Config struct {
	SecretKey []byte
	// Checked only when set
	Issuer   string
	TokenTTL time.Duration
}
