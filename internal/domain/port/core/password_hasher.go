package core

// PasswordHasher turns plaintext passwords into storable hashes
type PasswordHasher interface {
	// Hash returns a one-way hash of the password
	Hash(password string) (string, error)
	// Compare reports whether the password matches the stored hash
	Compare(hash, password string) bool
}
