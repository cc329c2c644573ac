package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	InitTokenService("test-secret")

	token, err := CreateAccessToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	InitTokenService("test-secret")

	_, err := ParseAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	InitTokenService("secret-one")
	token, err := CreateAccessToken("user-123")
	require.NoError(t, err)

	InitTokenService("secret-two")
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
