// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// RegisterInput is the payload for creating an account.
// Role is optional and defaults to USER.
type RegisterInput struct {
	Name     string `json:"name" validate:"max=100"`
	Login    string `json:"login" validate:"max=255"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty" validate:"omitempty,max=16"`
}

// LoginInput is the payload for exchanging credentials for a token.
type LoginInput struct {
	Login    string `json:"login" validate:"max=255"`
	Password string `json:"password"`
}

// LoginOutput carries the issued bearer token.
type LoginOutput struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   *entity.Account `json:"-"`
}

// AuthUsecase defines the credential-issuance operations.
type AuthUsecase interface {
	// Register validates the credentials and stores a new account. No token is issued.
	Register(ctx context.Context, input *RegisterInput) error

	// Login checks the credentials and issues a token for the login.
	// Unknown logins and wrong passwords both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListAccounts returns every stored account, oldest first.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// Authenticate verifies a bearer token and returns its claims.
	Authenticate(ctx context.Context, token string) (*service.Claims, error)
}
