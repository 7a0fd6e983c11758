package main

import (
	"bytes"
	"strings"
	"testing"

	"warden/config"
	domainerrors "warden/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func withConfig(t *testing.T, secret string) {
	t.Helper()

	original := loadConfig
	loadConfig = func() (*config.Config, error) {
		cfg := &config.Config{Auth: &config.AuthConfig{Issuer: "warden"}}
		cfg.SecretKey.Access = secret

		return cfg, nil
	}
	t.Cleanup(func() { loadConfig = original })
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	output, err := execute(t, "", "--help")
	require.NoError(t, err)

	for _, sub := range []string{"hash-password", "issue-token", "verify-token", "migrate"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
}

func TestHashPassword(t *testing.T) {
	output, err := execute(t, "password123\n", "hash-password", "--cost", "4")
	require.NoError(t, err)

	hash := strings.TrimSpace(output)
	assert.NotContains(t, hash, "password123")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

func TestHashPassword_RejectsShortPassword(t *testing.T) {
	_, err := execute(t, "short\n", "hash-password", "--cost", "4")

	require.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestIssueAndVerifyToken(t *testing.T) {
	withConfig(t, "cli-test-secret")

	token, err := execute(t, "", "issue-token", "--subject", "admin@example.com", "--role", "admin")
	require.NoError(t, err)
	token = strings.TrimSpace(token)
	assert.Len(t, strings.Split(token, "."), 3)

	output, err := execute(t, "", "verify-token", token)
	require.NoError(t, err)
	assert.Contains(t, output, "subject:   admin@example.com")
	assert.Contains(t, output, "role:      ADMIN")
	assert.Contains(t, output, "(in ")
}

func TestIssueToken_Errors(t *testing.T) {
	withConfig(t, "cli-test-secret")

	_, err := execute(t, "", "issue-token", "--subject", "a@b", "--role", "ROOT")
	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)

	_, err = execute(t, "", "issue-token")
	require.Error(t, err)

	_, err = execute(t, "", "issue-token", "--subject", "")
	require.Error(t, err)
}

func TestVerifyToken_Rejects(t *testing.T) {
	withConfig(t, "cli-test-secret")

	_, err := execute(t, "", "verify-token", "not.a.token")
	require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	withConfig(t, "other-secret")
	token, err := execute(t, "", "issue-token", "--subject", "a@b")
	require.NoError(t, err)

	withConfig(t, "cli-test-secret")
	_, err = execute(t, "", "verify-token", strings.TrimSpace(token))
	require.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestMigrate_RequiresPostgresConfig(t *testing.T) {
	withConfig(t, "cli-test-secret")

	_, err := execute(t, "", "migrate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}
