package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/phrazzld/wallet-api/internal/domain"
	"golang.org/x/crypto/hkdf"
)

// MinSecretLength is the minimum length in bytes of the process secrets
// used for credential digests and token signing.
const MinSecretLength = 32

// HKDF info labels. Each purpose gets its own subkey, so a password digest
// never equals the digest of an identical card number.
const (
	credentialKeyInfo = "wallet-api credential v1"
	cardNumberKeyInfo = "wallet-api card number v1"
)

// CredentialCipher produces keyed one-way digests of user credentials:
// HMAC-SHA256 under a subkey derived from the process secret with HKDF.
// Digests are deterministic, so a stored digest can be checked by
// transforming the candidate and comparing.
type CredentialCipher struct {
	key []byte
}

var _ domain.CredentialCipher = (*CredentialCipher)(nil)

var _ domain.NumberDigester = (*CredentialCipher)(nil)

// NewCredentialCipher derives the credential subkey from secret.
// A missing or short secret is a startup error.
func NewCredentialCipher(secret []byte) (*CredentialCipher, error) {
	return newKeyedCipher(secret, credentialKeyInfo)
}

// NewCardNumberCipher derives the subkey card numbers are digested with
// before they are stored.
func NewCardNumberCipher(secret []byte) (*CredentialCipher, error) {
	return newKeyedCipher(secret, cardNumberKeyInfo)
}

func newKeyedCipher(secret []byte, info string) (*CredentialCipher, error) {
	if len(secret) == 0 {
		return nil, ErrMissingCredentialKey
	}
	if len(secret) < MinSecretLength {
		return nil, ErrCredentialKeyTooShort
	}

	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("failed to derive %q key: %w", info, err)
	}

	return &CredentialCipher{key: key}, nil
}

// Transform returns the digest of plaintext.
func (c *CredentialCipher) Transform(plaintext string) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)
}

// Matches reports in constant time whether digest is the digest of plaintext.
func (c *CredentialCipher) Matches(plaintext string, digest []byte) bool {
	return hmac.Equal(c.Transform(plaintext), digest)
}
