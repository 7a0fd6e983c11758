package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/errors"
	mockUC "warden/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	claims := &service.Claims{Subject: "alice@example.com", Role: entity.RoleUser}

	tests := []struct {
		name       string
		header     string
		setup      func(uc *mockUC.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "forged").
					Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_INVALID",
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			authMiddleware := NewAuthMiddleware(uc)

			e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e.GET("/me", func(c echo.Context) error {
				got := deliverycontext.GetClaims(c)
				require.NotNil(t, got)
				assert.Equal(t, claims.Subject, got.Subject)
				assert.Same(t, got, deliverycontext.ClaimsFromContext(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			}, authMiddleware.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				body := decodeResponse(t, rec)
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	authMiddleware := NewAuthMiddleware(mockUC.NewMockAuthUsecase(t))

	tests := []struct {
		name       string
		claims     *service.Claims
		wantStatus int
	}{
		{name: "no claims", wantStatus: http.StatusUnauthorized},
		{name: "user role", claims: &service.Claims{Subject: "u@x", Role: entity.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "admin role", claims: &service.Claims{Subject: "a@x", Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(slog.New(slog.NewTextHandler(io.Discard, nil)))
			setClaims := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.claims != nil {
						deliverycontext.SetClaims(c, tt.claims)
					}

					return next(c)
				}
			}
			e.GET("/admin", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, setClaims, authMiddleware.RequireRole(entity.RoleAdmin))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrAccountAlreadyExists, "register"),
			wantStatus:  http.StatusConflict,
			wantCode:    "ACCOUNT_ALREADY_EXISTS",
			wantMessage: domainerrors.ErrAccountAlreadyExists.Message(),
		},
		{
			name:        "validation error",
			err:         domainerrors.ErrPasswordTooShort,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PASSWORD_TOO_SHORT",
			wantMessage: domainerrors.ErrPasswordTooShort.Message(),
		},
		{
			name:        "echo error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: domainerrors.ErrInternalError.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := newTestEcho(slog.New(slog.NewTextHandler(&logs, nil)))
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeResponse(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		requestID := deliverycontext.GetRequestID(c)
		assert.Equal(t, requestID, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
		deliverycontext.GetLogger(c.Request().Context()).Info("handled")

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	t.Run("reuses client id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, logs.String(), "request_id=client-123")
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("a", maxRequestIDLength+1))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}
