package domain

import "strings"

// CardType identifies the payment network a card number belongs to.
// It is derived from the number and never chosen by the user.
type CardType string

// Recognized card types.
const (
	CardTypeVisa            CardType = "visa"
	CardTypeMastercard      CardType = "mastercard"
	CardTypeAmericanExpress CardType = "american_express"
	CardTypeNotDefined      CardType = "not_defined"
)

// String returns the stable code of the card type.
func (t CardType) String() string {
	return string(t)
}

// IsDefined reports whether t names a supported network.
func (t CardType) IsDefined() bool {
	switch t {
	case CardTypeVisa, CardTypeMastercard, CardTypeAmericanExpress:
		return true
	default:
		return false
	}
}

// ExpectedLength returns the number of digits a card of type t carries,
// or 0 when the type is not defined.
func (t CardType) ExpectedLength() int {
	switch t {
	case CardTypeVisa, CardTypeMastercard:
		return 16
	case CardTypeAmericanExpress:
		return 15
	default:
		return 0
	}
}

// CVCLength returns the number of digits of the security code for type t,
// or 0 when the type is not defined.
func (t CardType) CVCLength() int {
	switch t {
	case CardTypeVisa, CardTypeMastercard:
		return 3
	case CardTypeAmericanExpress:
		return 4
	default:
		return 0
	}
}

// ParseCardType converts a client supplied code into a CardType.
// An empty string is treated as "no hint" and maps to CardTypeNotDefined.
// The boolean is false for codes that name no known type.
func ParseCardType(code string) (CardType, bool) {
	switch t := CardType(strings.ToLower(strings.TrimSpace(code))); t {
	case "", CardTypeNotDefined:
		return CardTypeNotDefined, true
	case CardTypeVisa, CardTypeMastercard, CardTypeAmericanExpress:
		return t, true
	default:
		return t, false
	}
}

// CardTypeDetector classifies a card number into a CardType.
// Implementations must be total: any input yields a type, never an error.
type CardTypeDetector interface {
	Detect(number string) CardType
}

// PrefixDetector detects the card type from the issuer prefix of the number.
type PrefixDetector struct{}

var _ CardTypeDetector = PrefixDetector{}

// NewCardTypeDetector returns the default prefix based detector.
func NewCardTypeDetector() PrefixDetector {
	return PrefixDetector{}
}

// Detect implements CardTypeDetector.
func (PrefixDetector) Detect(number string) CardType {
	return DetectCardType(number)
}

// DetectCardType classifies number by its issuer prefix after removing
// spaces and hyphens. Input too short to match a prefix is not_defined.
func DetectCardType(number string) CardType {
	digits := NormalizeCardNumber(number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return CardTypeVisa
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return CardTypeAmericanExpress
	case prefixInRange(digits, 2, 51, 55), prefixInRange(digits, 4, 2221, 2720):
		return CardTypeMastercard
	default:
		return CardTypeNotDefined
	}
}

// NormalizeCardNumber strips the separators users commonly type between
// digit groups. Other characters are kept so validation can reject them.
func NormalizeCardNumber(number string) string {
	return cardNumberSeparators.Replace(strings.TrimSpace(number))
}

var cardNumberSeparators = strings.NewReplacer(" ", "", "-", "")

// prefixInRange reports whether the first n characters of digits are all
// digits and their value lies within [lo, hi].
func prefixInRange(digits string, n, lo, hi int) bool {
	if len(digits) < n || !isDigits(digits[:n]) {
		return false
	}

	value := 0
	for i := 0; i < n; i++ {
		value = value*10 + int(digits[i]-'0')
	}

	return value >= lo && value <= hi
}

// isDigits reports whether s is non-empty and consists of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
