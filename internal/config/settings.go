package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	apperrors "github.com/allisson/cryptokaro/internal/errors"
)

// Settings is the external settings document read once at process start.
//
// A document that cannot be read does not stop the process. The failure is kept and
// reported as ErrConfiguration by the operations that need a value, so operations
// that need no settings keep working.
type Settings struct {
	AESDefaultKeySize *int    `json:"aesDefaultKeySize" yaml:"aesDefaultKeySize"`
	TestMessage       *string `json:"testMessage"       yaml:"testMessage"`

	source  string
	loadErr error
}

// NewSettings builds settings from in-memory values.
func NewSettings(keySize int, testMessage string) *Settings {
	return &Settings{
		AESDefaultKeySize: &keySize,
		TestMessage:       &testMessage,
		source:            "settings",
	}
}

// LoadSettings reads the settings document at path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON. The returned value is never nil.
func LoadSettings(path string) *Settings {
	s := &Settings{source: filepath.Base(path)}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		s.loadErr = fmt.Errorf("could not open %s: %w", s.source, err)
		return s
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, s)
	default:
		err = s.unmarshalJSON(data)
	}
	if err != nil {
		s.AESDefaultKeySize, s.TestMessage = nil, nil
		s.loadErr = fmt.Errorf("could not parse %s: %w", s.source, err)
	}
	return s
}

// unmarshalJSON decodes the document matching keys exactly. YAML keys are
// already case sensitive; encoding/json on its own is not.
func (s *Settings) unmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if v, ok := doc["aesDefaultKeySize"]; ok {
		if err := json.Unmarshal(v, &s.AESDefaultKeySize); err != nil {
			return err
		}
	}
	if v, ok := doc["testMessage"]; ok {
		if err := json.Unmarshal(v, &s.TestMessage); err != nil {
			return err
		}
	}
	return nil
}

// Err returns the error encountered while loading the document, if any.
func (s *Settings) Err() error {
	return s.loadErr
}

// Source names the document the settings came from.
func (s *Settings) Source() string {
	return s.source
}

// KeySize returns aesDefaultKeySize, the length in bytes of generated keys.
func (s *Settings) KeySize() (int, error) {
	if s.loadErr != nil {
		return 0, apperrors.Newf(apperrors.ErrConfiguration, "%v", s.loadErr)
	}
	if s.AESDefaultKeySize == nil {
		return 0, apperrors.Newf(apperrors.ErrConfiguration, "'aesDefaultKeySize' is not set in %s", s.source)
	}
	return *s.AESDefaultKeySize, nil
}

// Message returns testMessage, the string digested by the integration test.
func (s *Settings) Message() (string, error) {
	if s.loadErr != nil {
		return "", apperrors.Newf(apperrors.ErrConfiguration, "%v", s.loadErr)
	}
	if s.TestMessage == nil {
		return "", apperrors.Newf(apperrors.ErrConfiguration, "'testMessage' is not set in %s", s.source)
	}
	return *s.TestMessage, nil
}
