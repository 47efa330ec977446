package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates account with hashed password", func(t *testing.T) {
		a, err := NewAccount("Test User", "User@Example.com", "1234567890", "password123")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", a.Email)
		assert.NotEqual(t, "password123", a.PasswordHash)
		assert.False(t, a.Paid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAccount("", "user@example.com", "", "password123")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewAccount("Test", "not-an-email", "", "password123")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewAccount("Test", "user@example.com", "", "short")
		assert.Error(t, err)
	})
}

func TestAccount_VerifyPassword(t *testing.T) {
	a, err := NewAccount("Test User", "user@example.com", "", "password123")
	require.NoError(t, err)

	assert.True(t, a.VerifyPassword("password123"))
	assert.False(t, a.VerifyPassword("wrong-password"))
}

func TestAccount_MarkPaid(t *testing.T) {
	a, err := NewAccount("Test User", "user@example.com", "", "password123")
	require.NoError(t, err)

	assert.False(t, a.IsEntitled())
	a.MarkPaid()
	assert.True(t, a.IsEntitled())
}
