// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/domain/validation"
	"warden/internal/errors"
	"warden/internal/usecase"

	"go.uber.org/fx"
)

// TokenTypeBearer is the token type reported by Login.
const TokenTypeBearer = "Bearer"

// decoyPassword is hashed once and compared against on unknown logins.
const decoyPassword = "warden-decoy-password"

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	decoyOnce sync.Once
	decoyHash string
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials, rejects duplicates, hashes the password and saves the account.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (err error) {
	defer func() { recordAttempt(operationRegister, err) }()

	if input == nil {
		input = &usecase.RegisterInput{}
	}

	if err := validation.ValidateCredentials(input.Name, input.Login, input.Password); err != nil {
		srv.log(ctx).Warn("Registration rejected by validation", slog.String("login", input.Login), slog.Any("error", err))

		return err
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		srv.log(ctx).Warn("Registration rejected: unknown role", slog.String("login", input.Login), slog.String("role", input.Role))

		return domainerrors.ErrInvalidRole
	}

	_, err = srv.accountRepo.FindByLogin(ctx, input.Login)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected: login taken", slog.String("login", input.Login))

		return domainerrors.ErrAccountAlreadyExists.WrapMessage("login already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Error("Failed to look up account during registration", slog.String("login", input.Login), slog.Any("error", err))

		return errors.Wrap(err, "failed to look up account during registration")
	}

	start := time.Now()
	hash, err := srv.hasher.Hash(input.Password)
	recordHashDuration(time.Since(start))
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := &entity.Account{
		Login:        input.Login,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
	}

	if _, err := srv.accountRepo.Save(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Warn("Registration lost race for login", slog.String("login", input.Login))

			return err
		}
		srv.log(ctx).Error("Failed to save account", slog.String("login", input.Login), slog.Any("error", err))

		return errors.Wrap(err, "failed to save account during registration")
	}

	srv.log(ctx).Info("Account registered", slog.String("login", input.Login), slog.String("role", role.String()))

	return nil
}

// Login authenticates a login/password pair and issues a bearer token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (output *usecase.LoginOutput, err error) {
	defer func() { recordAttempt(operationLogin, err) }()

	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := srv.accountRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(input.Password, srv.decoy(ctx))
			srv.log(ctx).Warn("Login failed: unknown login", slog.String("login", input.Login))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up account during login", slog.String("login", input.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account during login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials
	}

	issued, err := srv.tokenService.Issue(account.Login, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("login", account.Login), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("login", account.Login))

	return &usecase.LoginOutput{
		Token:     issued.Token,
		TokenType: TokenTypeBearer,
		ExpiresAt: issued.ExpiresAt,
		Account:   account,
	}, nil
}

// decoy returns a hash of decoyPassword produced by the configured hasher, computed on first use.
func (srv *authService) decoy(ctx context.Context) string {
	srv.decoyOnce.Do(func() {
		hash, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash decoy password", slog.Any("error", err))

			return
		}
		srv.decoyHash = hash
	})

	return srv.decoyHash
}

// ListAccounts returns every stored account.
func (srv *authService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Authenticate verifies a bearer token.
func (srv *authService) Authenticate(ctx context.Context, token string) (*service.Claims, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, err
	}

	return claims, nil
}
