package auth

// PasswordHasher abstracts the one-way password hash (e.g., bcrypt),
// keeping the domain free of crypto details.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the digest.
	// A mismatch is a plain false, never an error.
	Check(password, hash string) bool
}
