package impl

import (
	"time"

	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationRegister = "register"
	operationLogin    = "login"

	outcomeSuccess  = "success"
	outcomeInvalid  = "invalid"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)

// Metrics for credential issuance.
var (
	// authAttempts counts register and login calls by outcome.
	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warden_auth_attempts_total",
		Help: "Total number of register and login attempts",
	}, []string{"operation", "outcome"})

	// passwordHashDuration tracks how long bcrypt hashing takes.
	passwordHashDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "warden_password_hash_duration_seconds",
		Help:    "Histogram of password hashing latency in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// recordAttempt classifies err and increments the attempt counter for operation.
func recordAttempt(operation string, err error) {
	authAttempts.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func recordHashDuration(d time.Duration) {
	passwordHashDuration.Observe(d.Seconds())
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, domainerrors.ErrAccountAlreadyExists):
		return outcomeConflict
	case domainerrors.IsValidationError(err), errors.Is(err, domainerrors.ErrInvalidCredentials):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
