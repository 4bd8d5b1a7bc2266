package dto

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is implemented by every typed response. The status field is always first
// on the wire.
type Response interface {
	GetStatus() string
}

// DigestResponse is returned by sha256 and hmac.
type DigestResponse struct {
	Status string `json:"status"`
	Digest string `json:"digest"` // Lowercase hex
}

// NewDigestResponse creates a successful digest response.
func NewDigestResponse(digest string) *DigestResponse {
	return &DigestResponse{Status: StatusSuccess, Digest: digest}
}

// GetStatus returns the response status.
func (r *DigestResponse) GetStatus() string { return r.Status }

// KeyResponse is returned by generateKey.
type KeyResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"` // Lowercase hex
}

// NewKeyResponse creates a successful key response.
func NewKeyResponse(key string) *KeyResponse {
	return &KeyResponse{Status: StatusSuccess, Key: key}
}

// GetStatus returns the response status.
func (r *KeyResponse) GetStatus() string { return r.Status }

// EncryptResponse is returned by encryptAES.
type EncryptResponse struct {
	Status     string `json:"status"`
	Ciphertext string `json:"ciphertext"` // Base64
	IV         string `json:"iv"`         // Lowercase hex, required for decryption
}

// NewEncryptResponse creates a successful encryption response.
func NewEncryptResponse(ciphertext, iv string) *EncryptResponse {
	return &EncryptResponse{Status: StatusSuccess, Ciphertext: ciphertext, IV: iv}
}

// GetStatus returns the response status.
func (r *EncryptResponse) GetStatus() string { return r.Status }

// DecryptResponse is returned by decryptAES.
type DecryptResponse struct {
	Status    string `json:"status"`
	Plaintext string `json:"plaintext"`
}

// NewDecryptResponse creates a successful decryption response.
func NewDecryptResponse(plaintext string) *DecryptResponse {
	return &DecryptResponse{Status: StatusSuccess, Plaintext: plaintext}
}

// GetStatus returns the response status.
func (r *DecryptResponse) GetStatus() string { return r.Status }

// IntegrationTestResponse is returned by integrationTest.
type IntegrationTestResponse struct {
	Status string `json:"status"`
	HTML   string `json:"html"`
}

// NewIntegrationTestResponse creates a successful integration test response.
func NewIntegrationTestResponse(html string) *IntegrationTestResponse {
	return &IntegrationTestResponse{Status: StatusSuccess, HTML: html}
}

// GetStatus returns the response status.
func (r *IntegrationTestResponse) GetStatus() string { return r.Status }

// ErrorResponse is returned for every failure.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// NewErrorResponse creates an error response carrying message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Status: StatusError, Error: message}
}

// GetStatus returns the response status.
func (r *ErrorResponse) GetStatus() string { return r.Status }
