package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-jwt-tests-0123456789",
		AccessTokenExpiration: expiration,
		Issuer:                "hisabpro-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	accountID := uuid.New()

	token, err := svc.GenerateToken(accountID, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.Token)

	claims, err := svc.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "hisabpro-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "completely-different-secret-0123456789ab",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "hisabpro-test",
		})
		token, err := other.GenerateToken(uuid.New(), "user@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestJWTService(-time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "user@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	revoked, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Add(ctx, "jti-1", time.Minute))

	revoked, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("expired entry is not blacklisted", func(t *testing.T) {
		require.NoError(t, bl.Add(ctx, "jti-2", time.Nanosecond))
		time.Sleep(5 * time.Millisecond)

		revoked, err := bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		require.NoError(t, bl.Add(ctx, "jti-3", 0))

		revoked, err := bl.IsBlacklisted(ctx, "jti-3")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
