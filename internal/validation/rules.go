// Package validation adapts jellydator/validation results to the dispatcher's error kinds.
package validation

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// Present requires a pointer field to be set. An empty string is a present value.
var Present = validation.NotNil

// WrapValidationError wraps payload validation errors as ErrMissingField.
// Field errors are reported in a stable, sorted order using the payload's field names.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !apperrors.As(err, &fieldErrs) {
		return apperrors.Newf(apperrors.ErrMissingField, "invalid payload: %v", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for name := range fieldErrs {
		fields = append(fields, fmt.Sprintf("'%s'", name))
	}
	slices.Sort(fields)

	return apperrors.Newf(apperrors.ErrMissingField, "Missing %s in payload.", strings.Join(fields, ", "))
}
