package domain

import (
	"bytes"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardUserIDEmpty is returned when a card's user ID is empty or nil.
	ErrCardUserIDEmpty = errors.New("card user ID cannot be empty")

	// ErrCardNumberEmpty is returned when a card carries no number digest.
	ErrCardNumberEmpty = errors.New("card number cannot be empty")

	// ErrCardLastFourInvalid is returned when the stored tail is not four digits.
	ErrCardLastFourInvalid = errors.New("card last four digits are invalid")

	// ErrCardExpirationInvalid is returned when a card's expiration is out of range.
	ErrCardExpirationInvalid = errors.New("card expiration is invalid")

	// ErrCardTypeUndefined is returned when a card's type is not a supported network.
	ErrCardTypeUndefined = errors.New("card type must be defined")
)

// CardInput is a transient card submission exactly as the user typed it.
// Type is an optional hint; CardTypeNotDefined or "" means no hint.
type CardInput struct {
	OwnerName       string
	OwnerSurname    string
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	CVC             string
	Type            CardType
}

// NumberDigester turns a normalized card number into the keyed digest kept
// in its place. It must be deterministic for a given key.
type NumberDigester interface {
	Transform(plaintext string) []byte
}

// Card is a payment card held in a user's wallet.
// Cards are only created by a successful validation and never mutated;
// an edit is modelled as a replacement. Neither the full number nor the
// security code is retained.
type Card struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	OwnerName       string    `json:"owner_name"`
	OwnerSurname    string    `json:"owner_surname"`
	NumberDigest    []byte    `json:"-"`
	LastFour        string    `json:"last_four"`
	ExpirationMonth int       `json:"expiration_month"`
	ExpirationYear  int       `json:"expiration_year"`
	Type            CardType  `json:"card_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// Validate checks that a card is complete enough to be persisted.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	if len(c.NumberDigest) == 0 {
		return ErrCardNumberEmpty
	}

	if len(c.LastFour) != 4 || !isDigits(c.LastFour) {
		return ErrCardLastFourInvalid
	}

	if c.ExpirationMonth < 1 || c.ExpirationMonth > 12 || c.ExpirationYear < 2000 {
		return ErrCardExpirationInvalid
	}

	if !c.Type.IsDefined() {
		return ErrCardTypeUndefined
	}

	return nil
}

// OwnedBy returns a copy of the card assigned to userID.
func (c Card) OwnedBy(userID uuid.UUID) *Card {
	c.UserID = userID
	return &c
}

// Masked returns the display form of the number, e.g. "•••• 1234".
func (c *Card) Masked() string {
	return "•••• " + c.LastFour
}

// SameAs reports whether the card has the given number digest and expiration.
func (c *Card) SameAs(digest []byte, month, year int) bool {
	return bytes.Equal(c.NumberDigest, digest) && c.ExpirationMonth == month && c.ExpirationYear == year
}

// ExpiredAt reports whether the card's expiration month lies before the
// calendar month of today.
func (c *Card) ExpiredAt(today time.Time) bool {
	return monthBefore(c.ExpirationYear, c.ExpirationMonth, today)
}

func monthBefore(year, month int, today time.Time) bool {
	if year != today.Year() {
		return year < today.Year()
	}
	return month < int(today.Month())
}
