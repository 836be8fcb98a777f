package crypto

// PasswordHasher is the credential hashing collaborator used by the account
// service. It never exposes or stores plaintext passwords.
type PasswordHasher interface {
	// Hash returns a one-way digest of password. A value that already is a
	// digest produced by this hasher is returned unchanged, so hashing is
	// applied exactly once.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	Verify(password, digest string) bool

	// IsHashed reports whether value is recognisable as a digest.
	IsHashed(value string) bool
}
