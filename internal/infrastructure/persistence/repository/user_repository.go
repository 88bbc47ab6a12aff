package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emrebktas/modpack-assistant/internal/domain"
	"github.com/emrebktas/modpack-assistant/internal/infrastructure/persistence/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(model.ToUserModel(user)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

// ResolveStatus is the compare-and-swap that makes approval single-use:
// the WHERE clause only matches while the row is still PENDING, so of two
// concurrent resolutions exactly one sees RowsAffected == 1.
func (r *UserRepository) ResolveStatus(ctx context.Context, id string, to domain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND status = ?", id, string(domain.StatusPending)).
		Update("status", string(to))
	if res.Error != nil {
		return false, fmt.Errorf("failed to update status: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
