package auth

import (
	"errors"
	"fmt"

	"github.com/phrazzld/wallet-api/internal/domain"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWeakJWTSecret indicates the signing secret is shorter than MinSecretLength
	ErrWeakJWTSecret = fmt.Errorf("%w: jwt secret must be at least %d bytes", domain.ErrMisconfigured, MinSecretLength)

	// ErrMissingCredentialKey indicates the credential key is not configured
	ErrMissingCredentialKey = fmt.Errorf("%w: credential key is not configured", domain.ErrMisconfigured)

	// ErrCredentialKeyTooShort indicates the credential key is shorter than MinSecretLength
	ErrCredentialKeyTooShort = fmt.Errorf("%w: credential key must be at least %d bytes", domain.ErrMisconfigured, MinSecretLength)
)
