package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/identity"
	"github.com/hisabpro/backend/internal/domain/shared"
	"github.com/hisabpro/backend/internal/infrastructure/auth"
	"github.com/hisabpro/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func newTestAuthService(repo *MockAccountRepository) (*AuthService, *auth.InMemoryTokenBlacklist) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-auth-service",
		AccessTokenExpiration: time.Hour,
		Issuer:                "hisabpro-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, jwtService, blacklist, zap.NewNop()), blacklist
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers a new account", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "ali@example.com").Return(nil, shared.ErrNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.Account")).Return(nil)

		resp, err := service.Register(context.Background(), RegisterInput{
			Name:     "Ali",
			Email:    "ali@example.com",
			Phone:    "03001234567",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "ali@example.com", resp.Email)
		assert.False(t, resp.Paid)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		existing, err := identity.NewAccount("Ali", "ali@example.com", "", "password123")
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "ali@example.com").Return(existing, nil)

		_, err = service.Register(context.Background(), RegisterInput{
			Name:     "Other Ali",
			Email:    "ali@example.com",
			Password: "password456",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := service.Register(context.Background(), RegisterInput{
			Name:     "Ali",
			Email:    "ali@example.com",
			Password: "short",
		})

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		account, err := identity.NewAccount("Ali", "ali@example.com", "", "password123")
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "ali@example.com").Return(account, nil)

		result, err := service.Login(context.Background(), LoginInput{
			Email:    "ali@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.True(t, result.ExpiresAt.After(time.Now()))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		account, err := identity.NewAccount("Ali", "ali@example.com", "", "password123")
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "ali@example.com").Return(account, nil)

		_, err = service.Login(context.Background(), LoginInput{
			Email:    "ali@example.com",
			Password: "wrongpassword",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("does not reveal whether the email exists", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "password123",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("blacklists the token until expiry", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, blacklist := newTestAuthService(repo)

		err := service.Logout(context.Background(), LogoutInput{
			TokenID:   "jti-123",
			ExpiresAt: time.Now().Add(time.Hour),
		})

		require.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(context.Background(), "jti-123")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("ignores an already expired token", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, blacklist := newTestAuthService(repo)

		err := service.Logout(context.Background(), LogoutInput{
			TokenID:   "jti-expired",
			ExpiresAt: time.Now().Add(-time.Minute),
		})

		require.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(context.Background(), "jti-expired")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestAuthService_GetCurrentAccount(t *testing.T) {
	t.Run("returns the account profile", func(t *testing.T) {
		repo := new(MockAccountRepository)
		service, _ := newTestAuthService(repo)

		account, err := identity.NewAccount("Ali", "ali@example.com", "", "password123")
		require.NoError(t, err)
		account.MarkPaid()
		repo.On("FindByID", mock.Anything, account.ID).Return(account, nil)

		resp, err := service.GetCurrentAccount(context.Background(), account.ID)

		require.NoError(t, err)
		assert.Equal(t, account.ID, resp.ID)
		assert.True(t, resp.Paid)
	})
}
