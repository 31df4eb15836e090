package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "one@example.com"},
		{ID: uuid.New(), Email: "two@example.com", IsSuspended: true},
	}
	fx.userRepo.On("FindAll", ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetUser(ctx, id)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_SuspendUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.On("SetSuspended", ctx, id, true).Return(nil)

	err := fx.service.SuspendUser(ctx, &usecase.SuspendUserInput{ID: id, Suspended: true})

	require.NoError(t, err)
}

func TestUserService_SuspendUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.On("SetSuspended", ctx, id, false).Return(repository.ErrUserNotFound)

	err := fx.service.SuspendUser(ctx, &usecase.SuspendUserInput{ID: id, Suspended: false})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.On("SoftDelete", ctx, id).Return(nil)

	err := fx.service.DeleteUser(ctx, id)

	require.NoError(t, err)
}

func TestUserService_DeleteUser_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	storeErr := errors.New("connection refused")
	fx.userRepo.On("SoftDelete", ctx, id).Return(storeErr)

	err := fx.service.DeleteUser(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
