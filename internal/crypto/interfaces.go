package crypto

import "github.com/MKhiriev/go-contacts/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Plaintext passwords are never stored.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// produce different hashes.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(hash, password string) error
}

// TokenIssuer creates and checks signed session tokens.
type TokenIssuer interface {
	// Issue signs a new token for userID that expires after the configured
	// duration.
	Issue(userID string) (models.Token, error)

	// Parse verifies signature, issuer and expiry of tokenString and returns
	// its claims. Any failure wraps [ErrInvalidToken].
	Parse(tokenString string) (models.Token, error)
}
