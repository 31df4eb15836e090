// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the submitted credentials and issues a signed token.
//
// An unknown username and a wrong password produce the same
// ErrInvalidCredentials, so the response never reveals whether
// the account exists. Store failures stay distinct: a broken
// database must surface as a server error, never as a rejection.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("username", input.Username))

	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load admin during login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	// Check password outside any transaction (HMAC is CPU-bound).
	if !srv.hasher.Verify(input.Password, admin.PasswordDigest, admin.PasswordSalt) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(admin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Admin logged in successfully", slog.Any("adminID", admin.ID))

	return &usecase.AuthOutput{
		Token:    token,
		Username: admin.Username,
	}, nil
}

// Register creates a new admin account and issues a token for it.
//
// Username uniqueness is enforced twice: a pre-check keeps the common
// duplicate case cheap, and the store's unique constraint closes the
// race between two concurrent registrations of the same name. Only one
// of those inserts can commit; the loser gets ErrUsernameTaken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting admin registration", slog.String("username", input.Username))

	digest, salt, err := srv.hasher.Generate(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newAdmin := &entity.Admin{
		Username:       input.Username,
		PasswordDigest: digest,
		PasswordSalt:   salt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		taken, existsErr := adminRepo.ExistsByUsername(ctx, input.Username)
		if existsErr != nil {
			return errors.Wrap(existsErr, "failed to check username availability")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
		}

		if createErr := adminRepo.Create(ctx, newAdmin); createErr != nil {
			return errors.Wrap(createErr, "failed to create admin during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin registration transaction")
	}

	token, err := srv.tokenService.Issue(newAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("adminID", newAdmin.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Admin registered successfully", slog.Any("adminID", newAdmin.ID))

	return &usecase.AuthOutput{
		Token:    token,
		Username: newAdmin.Username,
	}, nil
}
