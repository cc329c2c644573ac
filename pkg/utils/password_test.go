package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abcdef")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := VerifyPassword("abcdef", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("abcdef")
	require.NoError(t, err)
	h2, err := HashPassword("abcdef")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	_, err := VerifyPassword("abcdef", "not-a-hash")
	assert.Error(t, err)
}
