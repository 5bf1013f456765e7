package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// FindOrCreateByExternalID resolves a provider subject id to a user,
	// creating one when none exists. The second return value reports
	// whether a new user was created.
	FindOrCreateByExternalID(ctx context.Context, provider model.Provider, subjectID string) (*model.User, bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindOrCreateByExternalID(ctx context.Context, provider model.Provider, subjectID string) (*model.User, bool, error) {
	column := provider.ExternalIDColumn()
	if column == "" {
		return nil, false, fmt.Errorf("unknown provider %q", provider)
	}

	var existing model.User
	err := r.db.WithContext(ctx).Where(column+" = ?", subjectID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	user, err := model.NewExternalUser(provider, subjectID)
	if err != nil {
		return nil, false, err
	}

	// The unique index on the provider column makes the insert race-safe:
	// a concurrent login with the same subject id degrades to a conflict
	// no-op and the follow-up lookup returns the winner's row.
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(user)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).Where(column+" = ?", subjectID).First(&existing).Error; err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}
	return user, true, nil
}
