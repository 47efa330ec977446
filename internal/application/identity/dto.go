package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hisabpro/backend/internal/domain/identity"
)

// RegisterInput represents a request to create a new account
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=32"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginInput represents a login request
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the issued access token
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LogoutInput carries the token identity being revoked
type LogoutInput struct {
	TokenID   string
	ExpiresAt time.Time
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Paid  bool      `json:"paid"`
}

// ToAccountResponse converts a domain account to its response form
func ToAccountResponse(account *identity.Account) *AccountResponse {
	return &AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
		Paid:  account.Paid,
	}
}
