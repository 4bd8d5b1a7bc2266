package service

import (
	"crypto/rand"
	"io"

	"github.com/allisson/cryptokaro/internal/codec"
	cryptoDomain "github.com/allisson/cryptokaro/internal/crypto/domain"
)

// RandomKeyGenerator implements KeyGenerator on top of a secure random reader.
type RandomKeyGenerator struct {
	rand io.Reader
}

// NewKeyGenerator creates a key generator backed by crypto/rand.
func NewKeyGenerator() *RandomKeyGenerator {
	return &RandomKeyGenerator{rand: rand.Reader}
}

// NewKeyGeneratorWithRand creates a key generator backed by r.
func NewKeyGeneratorWithRand(r io.Reader) *RandomKeyGenerator {
	return &RandomKeyGenerator{rand: r}
}

// Generate returns size random bytes.
// Returns ErrInvalidKeyGenSize if size is not in [1, MaxGeneratedKeySize].
func (g *RandomKeyGenerator) Generate(size int) ([]byte, error) {
	if size <= 0 || size > cryptoDomain.MaxGeneratedKeySize {
		return nil, cryptoDomain.ErrInvalidKeyGenSize
	}
	return codec.ReadBlock(g.rand, size)
}
