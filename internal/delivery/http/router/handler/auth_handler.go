// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	"warden/internal/delivery/http/validator"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for account and token handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// meResponse describes the caller as seen by the verified token.
type meResponse struct {
	Login     string      `json:"login"`
	Role      entity.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// accountResponse is the public view of an account. Password hashes never leave the service.
type accountResponse struct {
	Login     string      `json:"login"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Account registered successfully")
}

// Login handles the login request and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Me returns the subject and role of the verified bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, meResponse{
		Login:     claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt,
	}, "Token verified")
}

// ListUsers returns every account without password hashes.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, accountResponse{
			Login:     account.Login,
			Name:      account.Name,
			Role:      account.Role,
			CreatedAt: account.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Accounts retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
