package user

import (
	"context"
	"errors"
	"fmt"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetProfile(ctx context.Context, userID uint) (*entities.Profile, error)
		UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (int64, error)
		DeleteUsers(ctx context.Context, filter UserFilter) error
	}

	// ProfileUpdate carries the optional profile fields of an update; nil
	// fields are left untouched.
	ProfileUpdate struct {
		Height        *int
		Gender        *string
		DailyKcal     *float64
		DailyCarbs    *float64
		DailyFat      *float64
		DailyProteins *float64
	}

	UserFilter struct {
		ID uint
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user and its empty profile in one transaction.
func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&entities.User{}).Where("username = ?", user.Username).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("%w: username %q already exists", domain.ErrIntegrity, user.Username)
		}

		if err := tx.Create(user).Error; err != nil {
			return store.Translate(err)
		}
		return store.Translate(tx.Create(&entities.Profile{UserID: user.ID}).Error)
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	return store.GetOne[entities.User](ctx, r.db, store.Conditions{"id": id})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return store.GetOne[entities.User](ctx, r.db, store.Conditions{"username": username})
}

func (r *userRepository) GetProfile(ctx context.Context, userID uint) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (int64, error) {
	changes := update.changes()
	if len(changes) == 0 {
		var n int64
		err := r.db.WithContext(ctx).Model(&entities.Profile{}).Where("user_id = ?", userID).Count(&n).Error
		return n, err
	}

	result := r.db.WithContext(ctx).Model(&entities.Profile{}).Where("user_id = ?", userID).Updates(changes)
	return result.RowsAffected, result.Error
}

func (r *userRepository) DeleteUsers(ctx context.Context, filter UserFilter) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&entities.User{}).Where("id = ?", filter.ID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		return store.DeleteUsers(tx, ids)
	})
}

func (u ProfileUpdate) changes() map[string]any {
	changes := map[string]any{}
	if u.Height != nil {
		changes["height"] = *u.Height
	}
	if u.Gender != nil {
		changes["gender"] = *u.Gender
	}
	if u.DailyKcal != nil {
		changes["daily_kcal"] = *u.DailyKcal
	}
	if u.DailyCarbs != nil {
		changes["daily_carbs"] = *u.DailyCarbs
	}
	if u.DailyFat != nil {
		changes["daily_fat"] = *u.DailyFat
	}
	if u.DailyProteins != nil {
		changes["daily_proteins"] = *u.DailyProteins
	}
	return changes
}
