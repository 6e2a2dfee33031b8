package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

func readRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	return b, nil
}

// GenerateRandomToken returns n random bytes, base64url encoded.
func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	b, err := readRandom(n)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateHexToken returns n random bytes as 2n hex characters. Used for
// password reset links.
func (rg *RandomGenerator) GenerateHexToken(n int) (string, error) {
	b, err := readRandom(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
