package ports

// PasswordHasher hashes and verifies passwords (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored hash. It never
	// errors: a malformed or empty hash simply verifies false.
	Verify(password, hash string) bool
}

// TokenIssuer signs and verifies session tokens (HS256).
type TokenIssuer interface {
	Issue(userID string) (token string, expiresInSeconds int64, err error)
	// Verify returns the bound user id. Any failure (bad signature,
	// malformed structure, expired) is an error; claims are never
	// returned partially.
	Verify(token string) (userID string, err error)
}
