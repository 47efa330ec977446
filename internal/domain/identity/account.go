package identity

import (
	"strings"
	"time"

	"github.com/hisabpro/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Account represents a registered merchant account. It is the tenant root:
// every product, sale, and payment belongs to exactly one account.
type Account struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string `gorm:"type:varchar(30)"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Paid         bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a new account with a hashed password
func NewAccount(name, email, phone, password string) (*Account, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "A valid email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}

	account := &Account{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(phone),
	}
	if err := account.SetPassword(password); err != nil {
		return nil, err
	}
	return account, nil
}

// SetPassword hashes and stores the given password
func (a *Account) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	a.UpdatedAt = time.Now()
	return nil
}

// VerifyPassword checks the given password against the stored hash
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// MarkPaid flips the entitlement flag. It is only called by payment
// reconciliation after a verified successful gateway callback.
func (a *Account) MarkPaid() {
	a.Paid = true
	a.UpdatedAt = time.Now()
}

// IsEntitled reports whether the account may use premium features
func (a *Account) IsEntitled() bool {
	return a.Paid
}
