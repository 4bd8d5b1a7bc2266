// Package errors provides the error kinds shared by every operation handler.
// Handlers fail with the most specific kind; the dispatcher maps any kind to the
// uniform error response while the kind itself stays available for logs and metrics.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds that can be returned by any operation.
var (
	// ErrMalformedInput indicates the request envelope or a payload field has the wrong shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownOperation indicates the requested operation is not part of the known set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingField indicates the payload lacks a field required by the operation.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidEncoding indicates a hex or base64 value could not be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidKeyLength indicates decoded key material has the wrong length.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrDecryptionFailed indicates ciphertext could not be decrypted with the given key and IV.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrConfiguration indicates a required external setting is missing or invalid.
	ErrConfiguration = errors.New("configuration error")
)

// kinds maps each sentinel to the name used in logs and metrics labels.
var kinds = []struct {
	err  error
	name string
}{
	{ErrMalformedInput, "MalformedInput"},
	{ErrUnknownOperation, "UnknownOperation"},
	{ErrMissingField, "MissingField"},
	{ErrInvalidEncoding, "InvalidEncoding"},
	{ErrInvalidKeyLength, "InvalidKeyLength"},
	{ErrDecryptionFailed, "DecryptionFailed"},
	{ErrConfiguration, "ConfigurationError"},
}

// KindInternal is reported by KindOf for errors that carry none of the known kinds.
const KindInternal = "Internal"

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// kindError carries a kind without repeating the kind's text in its message.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Newf returns an error of the given kind whose message is exactly the formatted text.
//
//	Newf(ErrUnknownOperation, "Unknown operation: %s", "foo").Error() == "Unknown operation: foo"
func Newf(kind error, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf names the first known kind found in err's tree, or KindInternal.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return KindInternal
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
