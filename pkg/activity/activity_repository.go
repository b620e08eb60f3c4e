package activity

import (
	"context"
	"errors"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		GetActivityByID(ctx context.Context, id uint) (*entities.Activity, error)
		GetOrCreateActivity(ctx context.Context, filter ActivityFilter) (*entities.Activity, bool, error)
		GetActivitiesByDiary(ctx context.Context, diaryID uint) ([]*entities.Activity, error)
		DeleteActivities(ctx context.Context, id uint) error
	}

	ActivityFilter struct {
		DiaryID      uint
		DisciplineID uint
		Time         datatypes.Time
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetActivityByID(ctx context.Context, id uint) (*entities.Activity, error) {
	var activity entities.Activity
	if err := r.db.WithContext(ctx).Preload("Discipline").Where("id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) GetOrCreateActivity(ctx context.Context, filter ActivityFilter) (*entities.Activity, bool, error) {
	conds := store.Conditions{
		"diary_id":      filter.DiaryID,
		"discipline_id": filter.DisciplineID,
		"time":          filter.Time,
	}
	return store.GetOrCreate(ctx, r.db, conds, func() *entities.Activity {
		return &entities.Activity{
			DiaryID:      filter.DiaryID,
			DisciplineID: filter.DisciplineID,
			Time:         filter.Time,
		}
	})
}

func (r *activityRepository) GetActivitiesByDiary(ctx context.Context, diaryID uint) ([]*entities.Activity, error) {
	var activities []*entities.Activity
	if err := r.db.WithContext(ctx).
		Preload("Discipline").
		Where("diary_id = ?", diaryID).
		Order("id").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) DeleteActivities(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Activity{}).Error
}
