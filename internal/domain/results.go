package domain

import "fmt"

// NewCardResult is the outcome of a single attempt to add a card.
// The zero value is not a valid outcome and never reads as success.
type NewCardResult int

// Card outcomes, in the order the validator checks them.
const (
	NewCardSuccess NewCardResult = iota + 1
	NewCardEmptyFields
	NewCardOwnerNameInvalid
	NewCardOwnerInvalid
	NewCardNumberInvalid
	NewCardTypeInvalid
	NewCardMonthInvalid
	NewCardYearInvalid
	NewCardCVCLengthInvalid
	NewCardAlreadyAdded
	NewCardError
)

var newCardResultCodes = map[NewCardResult]string{
	NewCardSuccess:          "success",
	NewCardEmptyFields:      "empty_fields",
	NewCardOwnerNameInvalid: "owner_name_invalid",
	NewCardOwnerInvalid:     "owner_invalid",
	NewCardNumberInvalid:    "number_invalid",
	NewCardTypeInvalid:      "card_type_invalid",
	NewCardMonthInvalid:     "month_invalid",
	NewCardYearInvalid:      "year_invalid",
	NewCardCVCLengthInvalid: "cvc_length_invalid",
	NewCardAlreadyAdded:     "card_already_added",
	NewCardError:            "error",
}

// String returns the stable snake_case code of the outcome.
func (r NewCardResult) String() string {
	return resultCode(newCardResultCodes, r)
}

// MarshalText implements encoding.TextMarshaler.
func (r NewCardResult) MarshalText() ([]byte, error) {
	return marshalResult(newCardResultCodes, r)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *NewCardResult) UnmarshalText(text []byte) error {
	return unmarshalResult(newCardResultCodes, r, text)
}

// OK reports whether the card was accepted.
func (r NewCardResult) OK() bool {
	return r == NewCardSuccess
}

// NewAccountResult is the outcome of a sign-up attempt.
type NewAccountResult int

// Sign-up outcomes. AccountNameInvalid rejects names a card owner could
// never carry. AccountEmailAlreadyRegistered is produced by the account
// service when storage already holds the email.
const (
	AccountSuccess NewAccountResult = iota + 1
	AccountEmptyFields
	AccountEmailInvalid
	AccountEmailMismatch
	AccountPasswordMismatch
	AccountPasswordTooShort
	AccountNameInvalid
	AccountEmailAlreadyRegistered
)

var newAccountResultCodes = map[NewAccountResult]string{
	AccountSuccess:                "success",
	AccountEmptyFields:            "empty_fields",
	AccountEmailInvalid:           "email_invalid",
	AccountEmailMismatch:          "email_mismatch",
	AccountPasswordMismatch:       "password_mismatch",
	AccountPasswordTooShort:       "password_too_short",
	AccountNameInvalid:            "name_invalid",
	AccountEmailAlreadyRegistered: "email_already_registered",
}

// String returns the stable snake_case code of the outcome.
func (r NewAccountResult) String() string {
	return resultCode(newAccountResultCodes, r)
}

// MarshalText implements encoding.TextMarshaler.
func (r NewAccountResult) MarshalText() ([]byte, error) {
	return marshalResult(newAccountResultCodes, r)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *NewAccountResult) UnmarshalText(text []byte) error {
	return unmarshalResult(newAccountResultCodes, r, text)
}

// OK reports whether the account was accepted.
func (r NewAccountResult) OK() bool {
	return r == AccountSuccess
}

// LoginResult is the outcome of a log-in attempt. An unknown email and a
// wrong password both yield LoginUserNotFound.
type LoginResult int

// Log-in outcomes.
const (
	LoginSuccess LoginResult = iota + 1
	LoginEmptyFields
	LoginEmailInvalid
	LoginUserNotFound
)

var loginResultCodes = map[LoginResult]string{
	LoginSuccess:      "success",
	LoginEmptyFields:  "empty_fields",
	LoginEmailInvalid: "email_invalid",
	LoginUserNotFound: "user_not_found",
}

// String returns the stable snake_case code of the outcome.
func (r LoginResult) String() string {
	return resultCode(loginResultCodes, r)
}

// MarshalText implements encoding.TextMarshaler.
func (r LoginResult) MarshalText() ([]byte, error) {
	return marshalResult(loginResultCodes, r)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *LoginResult) UnmarshalText(text []byte) error {
	return unmarshalResult(loginResultCodes, r, text)
}

// OK reports whether the credentials were accepted.
func (r LoginResult) OK() bool {
	return r == LoginSuccess
}

func resultCode[R comparable](codes map[R]string, r R) string {
	if code, ok := codes[r]; ok {
		return code
	}
	return "unknown"
}

func marshalResult[R comparable](codes map[R]string, r R) ([]byte, error) {
	code, ok := codes[r]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownResult, r)
	}
	return []byte(code), nil
}

func unmarshalResult[R comparable](codes map[R]string, r *R, text []byte) error {
	for value, code := range codes {
		if code == string(text) {
			*r = value
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownResult, text)
}
