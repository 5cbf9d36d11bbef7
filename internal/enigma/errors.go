package enigma

import (
	"errors"
	"fmt"
)

// Error represents a violation detected by the cipher core.
//
// The taxonomy has three categories:
//   - Configuration: bad alphabet, malformed cycles, duplicate cycle symbols,
//     non-derangement reflector, invalid rotor/pawl counts
//   - Setup: unknown or misplaced rotors, bad setting/ring-setting strings,
//     notch or setting characters outside the alphabet
//   - Conversion: an index or symbol outside the alphabet during conversion
//
// Every violation fails immediately and synchronously at the point of
// detection. There is no retry and no partial recovery.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes core errors.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates an invalid alphabet, permutation,
	// rotor definition, or machine geometry.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"

	// ErrCodeSetup indicates an invalid per-message-group setup request.
	ErrCodeSetup ErrorCode = "SETUP"

	// ErrCodeConversion indicates an out-of-alphabet index or symbol
	// encountered during conversion.
	ErrCodeConversion ErrorCode = "CONVERSION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfiguration returns true if the error is a configuration error.
// Uses errors.As to handle wrapped errors.
func IsConfiguration(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeConfiguration
	}
	return false
}

// IsSetup returns true if the error is a machine setup error.
// Uses errors.As to handle wrapped errors.
func IsSetup(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeSetup
	}
	return false
}

// IsConversion returns true if the error is a conversion error.
// Uses errors.As to handle wrapped errors.
func IsConversion(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeConversion
	}
	return false
}

// NewConfigurationError creates a configuration Error from a format string.
func NewConfigurationError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NewSetupError creates a setup Error from a format string.
func NewSetupError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeSetup, Message: fmt.Sprintf(format, args...)}
}

// NewConversionError creates a conversion Error from a format string.
func NewConversionError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeConversion, Message: fmt.Sprintf(format, args...)}
}
