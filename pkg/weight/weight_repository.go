package weight

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	WeightRepository interface {
		GetWeight(ctx context.Context, filter WeightFilter) (*entities.Weight, error)
		GetOrCreateWeight(ctx context.Context, filter WeightFilter, value float64) (*entities.Weight, bool, error)
		GetWeightsByUser(ctx context.Context, userID uint) ([]*entities.Weight, error)
		DeleteWeights(ctx context.Context, id uint) error
	}

	WeightFilter struct {
		UserID uint
		Date   datatypes.Date
	}

	weightRepository struct {
		db *gorm.DB
	}
)

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (f WeightFilter) conditions() store.Conditions {
	return store.Conditions{"user_id": f.UserID, "date": f.Date}
}

func (r *weightRepository) GetWeight(ctx context.Context, filter WeightFilter) (*entities.Weight, error) {
	return store.GetOne[entities.Weight](ctx, r.db, filter.conditions())
}

// GetOrCreateWeight matches on user, date and value, so a different value
// for the same day becomes a second entry.
func (r *weightRepository) GetOrCreateWeight(ctx context.Context, filter WeightFilter, value float64) (*entities.Weight, bool, error) {
	conds := filter.conditions()
	conds["value"] = value
	return store.GetOrCreate(ctx, r.db, conds, func() *entities.Weight {
		return &entities.Weight{UserID: filter.UserID, Date: filter.Date, Value: value}
	})
}

func (r *weightRepository) GetWeightsByUser(ctx context.Context, userID uint) ([]*entities.Weight, error) {
	var weights []*entities.Weight
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (r *weightRepository) DeleteWeights(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Weight{}).Error
}
