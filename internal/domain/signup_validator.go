package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SignUpValidator checks registration forms and, on success, builds the
// user record with its password digest.
type SignUpValidator struct {
	cipher CredentialCipher
	policy PasswordPolicy
}

// NewSignUpValidator creates a SignUpValidator.
func NewSignUpValidator(cipher CredentialCipher, policy PasswordPolicy) (*SignUpValidator, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}
	if policy.MinLength < 1 {
		return nil, ErrInvalidPasswordPolicy
	}
	return &SignUpValidator{cipher: cipher, policy: policy}, nil
}

// Validate returns the outcome of in and, on AccountSuccess, the new user.
// The checks run in order: blank fields, email format, email confirmation,
// password confirmation, password length, name format. Names follow the
// card owner rule so the holder can later add cards in their own name.
func (v *SignUpValidator) Validate(in UserSignUp) (*User, NewAccountResult) {
	name := strings.TrimSpace(in.Name)
	surname := strings.TrimSpace(in.Surname)
	email := NormalizeEmail(in.Email)
	emailConfirm := NormalizeEmail(in.EmailConfirm)

	if name == "" || surname == "" || email == "" || emailConfirm == "" ||
		strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.PasswordConfirm) == "" {
		return nil, AccountEmptyFields
	}

	if !ValidEmail(email) {
		return nil, AccountEmailInvalid
	}

	if email != emailConfirm {
		return nil, AccountEmailMismatch
	}

	if in.Password != in.PasswordConfirm {
		return nil, AccountPasswordMismatch
	}

	if utf8.RuneCountInString(in.Password) < v.policy.MinLength {
		return nil, AccountPasswordTooShort
	}

	if !validOwnerName(name) || !validOwnerName(surname) {
		return nil, AccountNameInvalid
	}

	return &User{
		ID:        uuid.New(),
		Name:      name,
		Surname:   surname,
		Email:     email,
		Password:  v.cipher.Transform(in.Password),
		CreatedAt: time.Now().UTC(),
	}, AccountSuccess
}
