package diary

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	DiaryRepository interface {
		GetDiary(ctx context.Context, filter DiaryFilter) (*entities.Diary, error)
		GetOrCreateDiary(ctx context.Context, filter DiaryFilter) (*entities.Diary, bool, error)
		GetDiaryByID(ctx context.Context, id uint) (*entities.Diary, error)
	}

	// DiaryFilter is the diary's natural key.
	DiaryFilter struct {
		UserID uint
		Date   datatypes.Date
	}

	diaryRepository struct {
		db *gorm.DB
	}
)

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (f DiaryFilter) conditions() store.Conditions {
	return store.Conditions{"user_id": f.UserID, "date": f.Date}
}

func (r *diaryRepository) GetDiary(ctx context.Context, filter DiaryFilter) (*entities.Diary, error) {
	return store.GetOne[entities.Diary](ctx, r.db, filter.conditions())
}

func (r *diaryRepository) GetOrCreateDiary(ctx context.Context, filter DiaryFilter) (*entities.Diary, bool, error) {
	return store.GetOrCreate(ctx, r.db, filter.conditions(), func() *entities.Diary {
		return &entities.Diary{UserID: filter.UserID, Date: filter.Date}
	})
}

func (r *diaryRepository) GetDiaryByID(ctx context.Context, id uint) (*entities.Diary, error) {
	return store.GetOne[entities.Diary](ctx, r.db, store.Conditions{"id": id})
}
