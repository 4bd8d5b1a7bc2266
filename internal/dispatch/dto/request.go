// Package dto provides the typed payloads and responses exchanged at the dispatch boundary.
package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
	customValidation "github.com/allisson/cryptokaro/internal/validation"
)

// Payload is implemented by every operation payload.
type Payload interface {
	Validate() error
}

// DecodePayload unmarshals raw into dst and checks required fields.
//
// Keys must match the json tags of dst exactly; encoding/json alone would accept any
// casing. A field of the wrong JSON type returns ErrMalformedInput; an absent required
// field returns ErrMissingField. Unknown fields are ignored.
func DecodePayload(raw json.RawMessage, dst Payload) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return apperrors.Newf(apperrors.ErrMalformedInput, "invalid payload: %v", err)
	}

	exact := make(map[string]json.RawMessage, len(fields))
	for _, name := range jsonFieldNames(dst) {
		if value, ok := fields[name]; ok {
			exact[name] = value
		}
	}
	filtered, err := json.Marshal(exact)
	if err != nil {
		return apperrors.Newf(apperrors.ErrMalformedInput, "invalid payload: %v", err)
	}

	dec := json.NewDecoder(bytes.NewReader(filtered))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if apperrors.As(err, &typeErr) && typeErr.Field != "" {
			return apperrors.Newf(apperrors.ErrMalformedInput, "'%s' must be a %s", typeErr.Field, typeErr.Type.String())
		}
		return apperrors.Newf(apperrors.ErrMalformedInput, "invalid payload: %v", err)
	}
	return customValidation.WrapValidationError(dst.Validate())
}

// jsonFieldNames returns the json tag names of the struct dst points to.
func jsonFieldNames(dst Payload) []string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// TextRequest is the payload of sha256.
type TextRequest struct {
	TextInput *string `json:"textInput"`
}

// Validate checks that textInput is present. An empty string is a valid input.
func (r *TextRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TextInput, customValidation.Present),
	)
}

// KeyedTextRequest is the payload of hmac and encryptAES.
type KeyedTextRequest struct {
	Key       *string `json:"key"`       // Hex-encoded key
	TextInput *string `json:"textInput"` // Message or plaintext
}

// Validate checks that key and textInput are present.
func (r *KeyedTextRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key, customValidation.Present),
		validation.Field(&r.TextInput, customValidation.Present),
	)
}

// DecryptRequest is the payload of decryptAES.
type DecryptRequest struct {
	Key        *string `json:"key"`        // Hex-encoded 32-byte key
	IV         *string `json:"iv"`         // Hex-encoded 16-byte IV returned by encryptAES
	Ciphertext *string `json:"ciphertext"` // Base64-encoded ciphertext
}

// Validate checks that key, iv and ciphertext are present.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key, customValidation.Present),
		validation.Field(&r.IV, customValidation.Present),
		validation.Field(&r.Ciphertext, customValidation.Present),
	)
}

// EmptyRequest is the payload of operations that take no input.
type EmptyRequest struct{}

// Validate always succeeds.
func (r *EmptyRequest) Validate() error {
	return nil
}
