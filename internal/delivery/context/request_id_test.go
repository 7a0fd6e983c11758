package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-123")
	assert.Equal(t, "req-123", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-456")
	assert.Equal(t, "req-456", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	fallback := slog.Default()
	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestClaims(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetClaims(c))
	assert.Nil(t, ClaimsFromContext(c.Request().Context()))

	claims := &service.Claims{Subject: "alice@example.com", Role: entity.RoleAdmin}
	SetClaims(c, claims)

	assert.Same(t, claims, GetClaims(c))
	assert.Same(t, claims, ClaimsFromContext(c.Request().Context()))
}
