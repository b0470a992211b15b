package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, 42, "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test-agent", claims.UserAgent)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("key-one"), 1, "agent")
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("key"), "not.a.token")
	assert.Error(t, err)
}

func TestParseToken_ZeroUserID(t *testing.T) {
	key := []byte("key")

	token, err := GenerateToken(key, 0, "agent")
	require.NoError(t, err)

	_, err = ParseToken(key, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
