package auth

import "golang.org/x/crypto/bcrypt"

// SecretVerifier hashes and checks credential secrets. Pluggable so the
// hashing scheme can change without touching the auth flow.
type SecretVerifier interface {
	Hash(plain string) (string, error)
	Verify(hashed, plain string) error
}

// BcryptVerifier implements SecretVerifier with bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier builds a verifier with the given cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash hashes a plaintext secret.
func (v *BcryptVerifier) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks a plaintext secret against its hashed value.
func (v *BcryptVerifier) Verify(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
