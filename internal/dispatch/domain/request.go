package domain

import (
	"bytes"
	"encoding/json"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// Request is one parsed envelope. Payload is passed to the handler untouched and is
// guaranteed to be a JSON object.
type Request struct {
	Operation Operation
	Payload   json.RawMessage
}

// ParseRequest parses the raw boundary document.
//
// The top level must be an array holding exactly one object with a string "operation"
// and an object "payload". Any other shape returns ErrMalformedInput before the operation
// name is looked at. A well-formed envelope naming an unknown operation returns
// ErrUnknownOperation.
func ParseRequest(raw []byte) (*Request, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, apperrors.Newf(
			apperrors.ErrMalformedInput,
			"Invalid request format: expected an array containing one request object.",
		)
	}
	if len(items) != 1 {
		return nil, apperrors.Newf(
			apperrors.ErrMalformedInput,
			"Invalid request format: expected exactly one request object, got %d.",
			len(items),
		)
	}
	if !isObject(items[0]) {
		return nil, apperrors.Newf(
			apperrors.ErrMalformedInput,
			"Invalid request format: first array element must be an object.",
		)
	}

	// Keys are matched exactly; a differently cased "Operation" is not the operation.
	var env map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &env); err != nil {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: %v", err)
	}

	rawOperation, ok := env["operation"]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: missing 'operation'.")
	}
	var name string
	if err := json.Unmarshal(rawOperation, &name); err != nil || isNull(rawOperation) {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: 'operation' must be a string.")
	}

	payload, ok := env["payload"]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: missing 'payload'.")
	}
	if !isObject(payload) {
		return nil, apperrors.Newf(apperrors.ErrMalformedInput, "Invalid request format: 'payload' must be an object.")
	}

	op, err := ParseOperation(name)
	if err != nil {
		return nil, err
	}

	return &Request{Operation: op, Payload: payload}, nil
}

// isObject reports whether a raw JSON value is an object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// isNull reports whether a raw JSON value is the literal null.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
