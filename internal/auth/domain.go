package auth

// Identity is the verified subject of a token.
type Identity struct {
	ID      string
	Email   string
	IsAdmin bool
}
