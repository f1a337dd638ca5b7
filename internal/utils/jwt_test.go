package utils

import (
	"testing"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-at-least-32-characters-long"

func testUser() *domain.User {
	return &domain.User{
		ID:       "7b0e6a39-1d1c-4f0b-a0d5-8e4f5a1d2c3b",
		Username: "testuser",
		Email:    "test@example.com",
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	token, err := m.GenerateAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUser().ID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.False(t, claims.IsExpired())
	assert.Equal(t, 3600, m.GetAccessTokenExpiry())
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testSecret, time.Hour).GenerateAccessToken(testUser())
	require.NoError(t, err)

	other := NewJWTManager("another-secret-key-that-is-also-32-chars-long", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager(testSecret, time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.GenerateAccessToken(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestDecodeUnverified(t *testing.T) {
	token, err := NewJWTManager(testSecret, time.Hour).GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := DecodeUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt(), 5*time.Second)

	_, err = DecodeUnverified("opaque-session-token")
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("Password123!", 4)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "Password123!"))
	assert.False(t, CheckPassword(hash, "password123!"))
}

func TestIdentifierHelpers(t *testing.T) {
	assert.True(t, IsEmailIdentifier("test@example.com"))
	assert.False(t, IsEmailIdentifier("testuser"))
	assert.True(t, ValidateEmail("test@example.com"))
	assert.False(t, ValidateEmail("invalid-email"))
	assert.Equal(t, "test@example.com", SanitizeEmail("  Test@Example.COM "))
}
