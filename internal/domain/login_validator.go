package domain

import "strings"

// UserLookup finds a stored user by normalized email.
type UserLookup func(email string) (*User, bool)

// LoginValidator checks log-in forms against stored users.
type LoginValidator struct {
	cipher CredentialCipher
	decoy  []byte
}

// NewLoginValidator creates a LoginValidator.
func NewLoginValidator(cipher CredentialCipher) (*LoginValidator, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}
	return &LoginValidator{
		cipher: cipher,
		decoy:  cipher.Transform("wallet-api/unknown-user"),
	}, nil
}

// Validate returns the outcome of in against the users visible through lookup.
func (v *LoginValidator) Validate(in UserLogIn, lookup UserLookup) LoginResult {
	_, result := v.Authenticate(in, lookup)
	return result
}

// Authenticate validates in and returns the matching user on LoginSuccess.
// An unknown email still costs one digest comparison, and both it and a
// wrong password yield LoginUserNotFound. A nil lookup panics.
func (v *LoginValidator) Authenticate(in UserLogIn, lookup UserLookup) (*User, LoginResult) {
	if lookup == nil {
		// ALLOW-PANIC: a missing lookup is a wiring bug, not a failed log-in
		panic(ErrNilLookup)
	}

	email := NormalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, LoginEmptyFields
	}

	if !ValidEmail(email) {
		return nil, LoginEmailInvalid
	}

	user, found := lookup(email)
	if !found || user == nil {
		v.cipher.Matches(in.Password, v.decoy)
		return nil, LoginUserNotFound
	}

	if !v.cipher.Matches(in.Password, user.Password) {
		return nil, LoginUserNotFound
	}

	return user, LoginSuccess
}
