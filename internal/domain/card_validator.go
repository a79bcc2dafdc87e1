package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxOwnerNameLength is the longest owner name or surname accepted, in runes.
	MaxOwnerNameLength = 50

	// MaxYearsAhead bounds how far in the future an expiration year may lie.
	MaxYearsAhead = 20
)

// CardValidator decides whether a card submission may be added to a wallet.
// It is immutable after construction and safe for concurrent use.
type CardValidator struct {
	detector CardTypeDetector
	digester NumberDigester
	holder   *accountHolder
}

type accountHolder struct {
	name    string
	surname string
}

// CardValidatorOption configures a CardValidator.
type CardValidatorOption func(*CardValidator)

// WithAccountHolder requires the card owner to be the given person.
// Names are compared case-insensitively with surrounding and repeated
// whitespace ignored.
func WithAccountHolder(name, surname string) CardValidatorOption {
	return func(v *CardValidator) {
		v.holder = &accountHolder{
			name:    collapseSpaces(name),
			surname: collapseSpaces(surname),
		}
	}
}

// NewCardValidator creates a validator that classifies numbers with detector
// and stores them as digests produced by digester.
func NewCardValidator(
	detector CardTypeDetector,
	digester NumberDigester,
	opts ...CardValidatorOption,
) (*CardValidator, error) {
	if detector == nil {
		return nil, ErrNilDetector
	}
	if digester == nil {
		return nil, ErrNilDigester
	}

	v := &CardValidator{detector: detector, digester: digester}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Validate returns the outcome of adding in to a wallet that already holds
// existing, as of the calendar date today.
func (v *CardValidator) Validate(in CardInput, existing []Card, today time.Time) NewCardResult {
	_, result := v.NewCard(in, existing, today)
	return result
}

// NewCard validates in and, on NewCardSuccess, returns the normalized card.
// The returned card has no owner; callers assign one with Card.OwnedBy.
// The first failing check determines the outcome.
func (v *CardValidator) NewCard(in CardInput, existing []Card, today time.Time) (*Card, NewCardResult) {
	name := strings.TrimSpace(in.OwnerName)
	surname := strings.TrimSpace(in.OwnerSurname)
	number := NormalizeCardNumber(in.Number)
	monthText := strings.TrimSpace(in.ExpirationMonth)
	yearText := strings.TrimSpace(in.ExpirationYear)
	cvc := strings.TrimSpace(in.CVC)

	if name == "" || surname == "" || number == "" || monthText == "" || yearText == "" || cvc == "" {
		return nil, NewCardEmptyFields
	}

	if !validOwnerName(name) || (v.holder != nil && !strings.EqualFold(collapseSpaces(name), v.holder.name)) {
		return nil, NewCardOwnerNameInvalid
	}

	if !validOwnerName(surname) || (v.holder != nil && !strings.EqualFold(collapseSpaces(surname), v.holder.surname)) {
		return nil, NewCardOwnerInvalid
	}

	cardType := v.detector.Detect(number)
	if !validNumber(number, cardType) {
		return nil, NewCardNumberInvalid
	}

	if !cardType.IsDefined() || !hintAgrees(in.Type, cardType) {
		return nil, NewCardTypeInvalid
	}

	month, ok := parseExpirationMonth(monthText)
	if !ok {
		return nil, NewCardMonthInvalid
	}

	year, ok := parseExpirationYear(yearText)
	if !ok || year > today.Year()+MaxYearsAhead || monthBefore(year, month, today) {
		return nil, NewCardYearInvalid
	}

	if !isDigits(cvc) || len(cvc) != cardType.CVCLength() {
		return nil, NewCardCVCLengthInvalid
	}

	digest := v.digester.Transform(number)
	for i := range existing {
		if existing[i].SameAs(digest, month, year) {
			return nil, NewCardAlreadyAdded
		}
	}

	return &Card{
		ID:              uuid.New(),
		OwnerName:       name,
		OwnerSurname:    surname,
		NumberDigest:    digest,
		LastFour:        number[len(number)-4:],
		ExpirationMonth: month,
		ExpirationYear:  year,
		Type:            cardType,
		CreatedAt:       time.Now().UTC(),
	}, NewCardSuccess
}

// validOwnerName accepts letters, spaces and hyphens up to MaxOwnerNameLength runes.
func validOwnerName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > MaxOwnerNameLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' {
			return false
		}
	}
	return true
}

// validNumber checks the digit count against the detected type. An
// undetected number of a plausible length passes so the type check can
// report it.
func validNumber(number string, cardType CardType) bool {
	if !isDigits(number) {
		return false
	}
	if cardType.IsDefined() {
		return len(number) == cardType.ExpectedLength()
	}
	return len(number) == 15 || len(number) == 16
}

func hintAgrees(hint, detected CardType) bool {
	return hint == "" || hint == CardTypeNotDefined || hint == detected
}

func parseExpirationMonth(s string) (int, bool) {
	if len(s) > 2 || !isDigits(s) {
		return 0, false
	}
	month, err := strconv.Atoi(s)
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

// parseExpirationYear accepts "yy" (meaning 20yy) or "yyyy".
func parseExpirationYear(s string) (int, bool) {
	if (len(s) != 2 && len(s) != 4) || !isDigits(s) {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if len(s) == 2 {
		year += 2000
	}
	return year, true
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
