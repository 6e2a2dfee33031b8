package randomgenerator

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHexToken(t *testing.T) {
	rg := NewRandomGenerator()

	a, err := rg.GenerateHexToken(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	_, err = hex.DecodeString(a)
	assert.NoError(t, err)

	b, err := rg.GenerateHexToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateRandomToken(t *testing.T) {
	tok, err := NewRandomGenerator().GenerateRandomToken(32)
	require.NoError(t, err)
	assert.Len(t, tok, 43)
	assert.NotContains(t, tok, "=")
}
