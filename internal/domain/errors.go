package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrMisconfigured is returned when a domain component is constructed with
	// missing collaborators or an impossible policy. It indicates a wiring bug,
	// never a user input problem.
	ErrMisconfigured = errors.New("domain component misconfigured")

	// ErrNilDetector is returned when a CardValidator is built without a detector.
	ErrNilDetector = fmt.Errorf("%w: card type detector is nil", ErrMisconfigured)

	// ErrNilDigester is returned when a CardValidator is built without a number digester.
	ErrNilDigester = fmt.Errorf("%w: card number digester is nil", ErrMisconfigured)

	// ErrNilCipher is returned when a credential validator is built without a cipher.
	ErrNilCipher = fmt.Errorf("%w: credential cipher is nil", ErrMisconfigured)

	// ErrInvalidPasswordPolicy is returned for a password policy that cannot be satisfied.
	ErrInvalidPasswordPolicy = fmt.Errorf("%w: password minimum length must be positive", ErrMisconfigured)

	// ErrNilLookup is the panic value used when LoginValidator is given no lookup.
	ErrNilLookup = fmt.Errorf("%w: user lookup is nil", ErrMisconfigured)

	// ErrUnknownResult is returned when decoding an outcome code that does not exist.
	ErrUnknownResult = errors.New("unknown result code")
)
