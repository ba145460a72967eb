package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// SessionIssuer signs and validates the stateless session credential (RS256
// JWT) asserting a user id.
type SessionIssuer interface {
	IssueSession(userID string, expiresInSeconds int64) (string, error)
	ValidateSession(tokenString string) (userID string, err error)
}
