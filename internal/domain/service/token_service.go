package service

import (
	"time"

	"warden/internal/domain/entity"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	Subject   string // Login of the account the token was issued to.
	Role      entity.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after TTL.
	Issue(subject string, role entity.Role) (*IssuedToken, error)

	// Verify checks signature and expiry. It returns domainerrors.ErrTokenExpired
	// or domainerrors.ErrTokenInvalid on failure.
	Verify(token string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
