package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func storedAdmin() *entity.Admin {
	return &entity.Admin{
		ID:             uuid.New(),
		Username:       "alice",
		PasswordDigest: []byte("stored-digest"),
		PasswordSalt:   []byte("stored-salt"),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := storedAdmin()

	fx.adminRepo.On("FindByUsername", ctx, "alice").Return(admin, nil)
	fx.hasher.On("Verify", "secret-password", admin.PasswordDigest, admin.PasswordSalt).Return(true)
	fx.tokenService.On("Issue", admin).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, "alice", output.Username)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.adminRepo.On("FindByUsername", ctx, "nobody").Return(nil, repository.ErrAdminNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := storedAdmin()

	fx.adminRepo.On("FindByUsername", ctx, "alice").Return(admin, nil)
	fx.hasher.On("Verify", "wrong-password", admin.PasswordDigest, admin.PasswordSalt).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// An unknown username and a wrong password must be indistinguishable to
// the caller, otherwise login doubles as a username oracle.
func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := storedAdmin()

	fx.adminRepo.On("FindByUsername", ctx, "nobody").Return(nil, repository.ErrAdminNotFound)
	fx.adminRepo.On("FindByUsername", ctx, "alice").Return(admin, nil)
	fx.hasher.On("Verify", "wrong", admin.PasswordDigest, admin.PasswordSalt).Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "wrong"})
	_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, mismatchErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(mismatchErr, domainerrors.ErrInvalidCredentials))
}

// A broken store is a server fault, not a rejection: the error must not
// collapse into invalid credentials.
func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := errors.New("connection refused")
	fx.adminRepo.On("FindByUsername", ctx, "alice").Return(nil, storeErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, storeErr))
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	admin := storedAdmin()

	fx.adminRepo.On("FindByUsername", ctx, "alice").Return(admin, nil)
	fx.hasher.On("Verify", "secret-password", admin.PasswordDigest, admin.PasswordSalt).Return(true)
	fx.tokenService.On("Issue", admin).Return("", errors.New("signing failed"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	newID := uuid.New()

	fx.hasher.On("Generate", "secret-password").Return([]byte("digest"), []byte("salt"), nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			adminRepo := mockRepo.NewMockAdminRepository(t)
			factory.On("AdminRepo").Return(adminRepo)

			adminRepo.On("ExistsByUsername", ctx, "bob").Return(false, nil)
			adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Admin")).
				Run(func(args mock.Arguments) {
					args.Get(1).(*entity.Admin).ID = newID
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.tokenService.On("Issue", mock.AnythingOfType("*entity.Admin")).Return("signed.jwt.token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, "bob", output.Username)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.On("Generate", "secret-password").Return([]byte("digest"), []byte("salt"), nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "secret-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

// Two racing registrations both pass the pre-check; the store's unique
// constraint rejects the second insert and the error must still read as
// a taken username.
func TestAuthService_Register_DuplicateInsertRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.On("Generate", "secret-password").Return([]byte("digest"), []byte("salt"), nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			factory := mockRepo.NewMockRepositoryFactory(t)
			adminRepo := mockRepo.NewMockAdminRepository(t)
			factory.On("AdminRepo").Return(adminRepo)

			adminRepo.On("ExistsByUsername", ctx, "alice").Return(false, nil)
			adminRepo.On("Create", ctx, mock.AnythingOfType("*entity.Admin")).
				Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))

			err := fn(factory)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
		}).
		Return(errors.Wrap(domainerrors.ErrUsernameTaken, "username already exists"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "secret-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.On("Generate", "secret-password").Return(nil, nil, errors.New("entropy source unavailable"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "secret-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := errors.New("connection refused")

	fx.hasher.On("Generate", "secret-password").Return([]byte("digest"), []byte("salt"), nil)
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(storeErr, "failed to check username availability"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "secret-password"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	assert.True(t, errors.Is(err, storeErr))
}
