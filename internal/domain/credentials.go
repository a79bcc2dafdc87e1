package domain

// CredentialCipher turns a plaintext credential into a keyed digest.
// Transform must be deterministic for a given key, and Matches must
// compare in constant time.
type CredentialCipher interface {
	Transform(plaintext string) []byte
	Matches(plaintext string, digest []byte) bool
}

// DefaultPasswordMinLength is the shortest password accepted when no
// policy is configured.
const DefaultPasswordMinLength = 6

// PasswordPolicy holds the configurable password rules.
type PasswordPolicy struct {
	// MinLength is the minimum password length in runes.
	MinLength int
}

// DefaultPasswordPolicy returns the policy used when none is configured.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: DefaultPasswordMinLength}
}
