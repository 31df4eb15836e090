package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain's AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
// It returns the repository as a domain repository interface, adhering to dependency inversion.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername retrieves a single admin by exact username.
// A missing row maps to repository.ErrAdminNotFound; every other error is a
// store failure and is returned as such, never conflated with "not found".
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&adminM), nil
}

// ExistsByUsername reports whether an admin with the exact username exists.
func (repo *adminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count admins by username")
	}

	return count > 0, nil
}

// Create persists a new admin. The unique index on username is the
// authoritative duplicate check: a violation raised here (the check-then-act
// race) maps to the same domain error as the pre-check.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	// Propagate the generated ID and timestamps back to the entity.
	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:             data.ID,
		Username:       data.Username,
		PasswordDigest: data.PasswordDigest,
		PasswordSalt:   data.PasswordSalt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel for persistence.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:             data.ID,
		Username:       data.Username,
		PasswordDigest: data.PasswordDigest,
		PasswordSalt:   data.PasswordSalt,
	}
}
