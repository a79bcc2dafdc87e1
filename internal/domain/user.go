package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password digest cannot be empty")
)

// User represents a registered wallet holder.
// Password holds the keyed digest of the password, never the plaintext.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Password  []byte    `json:"-"` // Never expose the digest in JSON
	CreatedAt time.Time `json:"created_at"`
}

// UserSignUp is a registration form as submitted.
type UserSignUp struct {
	Name            string
	Surname         string
	Email           string
	EmailConfirm    string
	Password        string
	PasswordConfirm string
}

// UserLogIn is a log-in form as submitted.
type UserLogIn struct {
	Email    string
	Password string
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !ValidEmail(u.Email) {
		return ErrInvalidEmail
	}

	if len(u.Password) == 0 {
		return ErrEmptyPassword
	}

	return nil
}

// Initials returns the upper-cased first letters of the name and surname,
// e.g. "JD" for John Doe.
func (u *User) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.Name, u.Surname} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// NormalizeEmail returns the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail performs a structural check: exactly one '@' with a
// non-empty local part and domain, and no whitespace anywhere.
func ValidEmail(email string) bool {
	if strings.Count(email, "@") != 1 || strings.ContainsFunc(email, unicode.IsSpace) {
		return false
	}

	local, host, _ := strings.Cut(email, "@")
	return local != "" && host != ""
}
