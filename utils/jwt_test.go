package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractIdentity(t *testing.T) {
	token, err := GenerateToken("user-123", "a@example.com", "admin", time.Hour)
	require.NoError(t, err)

	ident, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", ident.UserID)
	assert.Equal(t, "a@example.com", ident.Email)
	assert.Equal(t, "admin", ident.UserType)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "a@example.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ExtractIdentityFromToken("not-a-token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("token-one")
	b := HashToken("token-one")
	c := HashToken("token-two")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
