package domain

import "time"

// Credential holds a registered identity. The secret is stored only in
// hashed form; verification goes through auth.SecretVerifier.
type Credential struct {
	UserID     string    `json:"userId"`
	SecretHash string    `json:"secretHash"`
	CreatedAt  time.Time `json:"createdAt"`
}
