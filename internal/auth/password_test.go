package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123", 4)

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), 4)

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123", 4)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("pw123", hash))
	assert.ErrorIs(t, CheckPassword("wrong", hash), ErrInvalidPassword)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("pw123", 4)
	require.NoError(t, err)
	hash2, err := HashPassword("pw123", 4)
	require.NoError(t, err)

	// Same password, different salts
	assert.NotEqual(t, hash1, hash2)
}

func TestGenerateSessionSecret(t *testing.T) {
	secret, err := GenerateSessionSecret()

	require.NoError(t, err)
	assert.Len(t, secret, 64) // 32 bytes hex encoded
}
