package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/wallet-api/internal/api/shared"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/service"
	"github.com/phrazzld/wallet-api/internal/service/auth"
	"github.com/phrazzld/wallet-api/internal/store"
)

// Errors raised by the API layer itself.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidID      = errors.New("invalid id")
	ErrInvalidRequest = errors.New("invalid request")
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrUnknownUser):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrCardNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrCardExists):
		return http.StatusConflict

	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err that reveals no
// internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrUnknownUser):
		return "Unauthorized"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, store.ErrCardExists):
		return "Card already added"
	case errors.Is(err, ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and safe message for err. defaultMsg, when
// set, replaces the generic message of 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns request validation errors into a message
// naming the first failing field without echoing the submitted value.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe.Tag()))
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "min":
		return "too short"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// outcomeMessages are the client messages for validation outcomes, keyed by
// their machine readable code.
var outcomeMessages = map[string]string{
	"empty_fields":             "All fields are required",
	"owner_name_invalid":       "Card holder name is invalid",
	"owner_invalid":            "Card holder surname is invalid",
	"number_invalid":           "Card number is invalid",
	"card_type_invalid":        "Card type is not supported",
	"month_invalid":            "Expiration month is invalid",
	"year_invalid":             "Expiration year is invalid",
	"cvc_length_invalid":       "CVC has the wrong length",
	"card_already_added":       "Card already added",
	"email_invalid":            "Email is invalid",
	"email_mismatch":           "Email confirmation does not match",
	"password_mismatch":        "Password confirmation does not match",
	"password_too_short":       "Password is too short",
	"name_invalid":             "Name or surname is invalid",
	"email_already_registered": "Email already registered",
	"user_not_found":           "Invalid email or password",
}

func outcomeMessage(code string) string {
	if msg, ok := outcomeMessages[code]; ok {
		return msg
	}
	return "Request rejected"
}

// cardResultStatus maps a rejected card outcome to its HTTP status.
func cardResultStatus(result domain.NewCardResult) int {
	switch result {
	case domain.NewCardAlreadyAdded:
		return http.StatusConflict
	case domain.NewCardEmptyFields,
		domain.NewCardOwnerNameInvalid,
		domain.NewCardOwnerInvalid,
		domain.NewCardNumberInvalid,
		domain.NewCardTypeInvalid,
		domain.NewCardMonthInvalid,
		domain.NewCardYearInvalid,
		domain.NewCardCVCLengthInvalid:
		return http.StatusBadRequest
	case domain.NewCardSuccess:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// accountResultStatus maps a rejected sign up outcome to its HTTP status.
func accountResultStatus(result domain.NewAccountResult) int {
	switch result {
	case domain.AccountEmailAlreadyRegistered:
		return http.StatusConflict
	case domain.AccountEmptyFields,
		domain.AccountEmailInvalid,
		domain.AccountEmailMismatch,
		domain.AccountPasswordMismatch,
		domain.AccountPasswordTooShort,
		domain.AccountNameInvalid:
		return http.StatusBadRequest
	case domain.AccountSuccess:
		return http.StatusCreated
	default:
		return http.StatusInternalServerError
	}
}

// loginResultStatus maps a rejected login outcome to its HTTP status.
func loginResultStatus(result domain.LoginResult) int {
	switch result {
	case domain.LoginUserNotFound:
		return http.StatusUnauthorized
	case domain.LoginEmptyFields, domain.LoginEmailInvalid:
		return http.StatusBadRequest
	case domain.LoginSuccess:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// respondWithOutcome writes the error response for a rejected outcome.
func respondWithOutcome(w http.ResponseWriter, r *http.Request, status int, outcome fmt.Stringer) {
	code := outcome.String()
	shared.RespondWithError(w, r, status, outcomeMessage(code), shared.WithCode(code))
}
