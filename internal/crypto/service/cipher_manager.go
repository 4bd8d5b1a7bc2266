package service

import (
	"crypto/rand"
	"io"

	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
)

// CipherManagerService implements CipherManager for the AES-256-CBC operations.
type CipherManagerService struct {
	rand io.Reader
}

// NewCipherManager creates a new CipherManagerService drawing IVs from crypto/rand.
func NewCipherManager() *CipherManagerService {
	return &CipherManagerService{rand: rand.Reader}
}

// NewCipherManagerWithRand creates a CipherManagerService drawing IVs from r.
func NewCipherManagerWithRand(r io.Reader) *CipherManagerService {
	return &CipherManagerService{rand: r}
}

// CreateCipher creates an AES-CBC cipher for key.
// Returns ErrAES256KeyRequired if key is not 32 bytes.
func (cm *CipherManagerService) CreateCipher(key []byte) (BlockCipher, error) {
	if len(key) != cryptoDomain.AES256KeySize {
		return nil, cryptoDomain.ErrAES256KeyRequired
	}
	return NewAESCBCWithRand(key, cm.rand)
}
