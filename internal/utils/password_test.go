package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("p@ss1234")
	require.NoError(t, err)
	require.NotEqual(t, "p@ss1234", hash)

	require.True(t, CheckPasswordHash("p@ss1234", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("p@ss1234")
	require.NoError(t, err)
	h2, err := HashPassword("p@ss1234")
	require.NoError(t, err)

	// Different salts, both verify.
	require.NotEqual(t, h1, h2)
	require.True(t, CheckPasswordHash("p@ss1234", h1))
	require.True(t, CheckPasswordHash("p@ss1234", h2))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	require.False(t, CheckPasswordHash("p@ss1234", ""))
	require.False(t, CheckPasswordHash("p@ss1234", "not-a-bcrypt-hash"))
}
