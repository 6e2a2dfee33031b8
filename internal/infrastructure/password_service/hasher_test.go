package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	h := NewHasherWithCost(4)

	hashed, err := h.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)

	assert.NoError(t, h.ComparePasswordHash("secret123", hashed))
	assert.ErrorIs(t, h.ComparePasswordHash("secret124", hashed), ErrPasswordMismatch)
	assert.Error(t, h.ComparePasswordHash("secret123", "not-a-bcrypt-hash"))
}

func TestHashString(t *testing.T) {
	h := NewHasher()

	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h.HashString("abc"))
	assert.Equal(t, "", h.HashString(""))
	assert.True(t, h.CheckHash("abc", h.HashString("abc")))
	assert.False(t, h.CheckHash("abd", h.HashString("abc")))
}
