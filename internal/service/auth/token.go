package auth

import "github.com/google/uuid"

// TokenGenerator produces opaque session credentials. Tokens carry no
// structure: they are compared for exact equality against the users table
// and remain valid until logout overwrites them.
type TokenGenerator interface {
	Generate() string
}

// UUIDTokenGenerator implements TokenGenerator with random UUIDs.
type UUIDTokenGenerator struct{}

// NewUUIDTokenGenerator creates a new UUIDTokenGenerator.
func NewUUIDTokenGenerator() *UUIDTokenGenerator {
	return &UUIDTokenGenerator{}
}

// Generate returns a new random UUID string.
func (g *UUIDTokenGenerator) Generate() string {
	return uuid.NewString()
}
