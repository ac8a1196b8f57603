package auth

import (
	"testing"
	"time"

	"jewelmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("opensesame")
	require.NoError(t, err)
	assert.NotEqual(t, "opensesame", hash)

	assert.True(t, CheckPassword(hash, "opensesame"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "opensesame"))
}

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "asha@example.com", Role: models.RoleAdmin}

	token, err := GenerateToken("secret", user, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "asha@example.com", claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: "user-1", Role: models.RoleGuest}
	token, err := GenerateToken("secret", user, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	user := &models.User{ID: "user-1", Role: models.RoleGuest}
	token, err := GenerateToken("secret", user, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not.a.token")
	assert.Error(t, err)
}
