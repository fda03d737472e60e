package password

import "golang.org/x/crypto/bcrypt"

// Hasher implements auth.PasswordHasher using bcrypt. bcrypt embeds a random
// per-call salt and cost factor in the digest, so two hashes of the same
// password never match byte-wise.
type Hasher struct {
	cost int
}

// NewHasher returns a bcrypt hasher. Costs below bcrypt.MinCost fall back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *Hasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
