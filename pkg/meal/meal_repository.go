package meal

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		GetMealByID(ctx context.Context, id uint) (*entities.Meal, error)
		GetMealByMealType(ctx context.Context, mealTypeID uint) (*entities.Meal, error)
		GetMealsByMealTypes(ctx context.Context, mealTypeIDs []uint) ([]*entities.Meal, error)
		GetOrCreateMeal(ctx context.Context, mealTypeID uint) (*entities.Meal, bool, error)
		UpdateMeal(ctx context.Context, id uint, update MealUpdate) (int64, error)
		DeleteMeals(ctx context.Context, id uint) error

		GetMealTypeByID(ctx context.Context, id uint) (*entities.MealType, error)
		GetOrCreateMealType(ctx context.Context, filter MealTypeFilter) (*entities.MealType, bool, error)
		GetMealTypesByDiary(ctx context.Context, diaryID uint) ([]*entities.MealType, error)
		DeleteMealTypes(ctx context.Context, id uint) error
	}

	// MealUpdate carries the totals to write; nil fields are left untouched.
	MealUpdate struct {
		TotalKcal     *float64
		TotalCarbs    *float64
		TotalProteins *float64
		TotalFat      *float64
	}

	MealTypeFilter struct {
		DiaryID uint
		Name    string
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (u MealUpdate) changes() map[string]any {
	changes := map[string]any{}
	if u.TotalKcal != nil {
		changes["total_kcal"] = *u.TotalKcal
	}
	if u.TotalCarbs != nil {
		changes["total_carbs"] = *u.TotalCarbs
	}
	if u.TotalProteins != nil {
		changes["total_proteins"] = *u.TotalProteins
	}
	if u.TotalFat != nil {
		changes["total_fat"] = *u.TotalFat
	}
	return changes
}

func (r *mealRepository) GetMealByID(ctx context.Context, id uint) (*entities.Meal, error) {
	return store.GetOne[entities.Meal](ctx, r.db, store.Conditions{"id": id})
}

func (r *mealRepository) GetMealByMealType(ctx context.Context, mealTypeID uint) (*entities.Meal, error) {
	return store.GetOne[entities.Meal](ctx, r.db, store.Conditions{"meal_type_id": mealTypeID})
}

func (r *mealRepository) GetMealsByMealTypes(ctx context.Context, mealTypeIDs []uint) ([]*entities.Meal, error) {
	var meals []*entities.Meal
	if len(mealTypeIDs) == 0 {
		return meals, nil
	}
	if err := r.db.WithContext(ctx).Where("meal_type_id IN ?", mealTypeIDs).Order("id").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetOrCreateMeal(ctx context.Context, mealTypeID uint) (*entities.Meal, bool, error) {
	return store.GetOrCreate(ctx, r.db, store.Conditions{"meal_type_id": mealTypeID}, func() *entities.Meal {
		return &entities.Meal{MealTypeID: mealTypeID}
	})
}

// UpdateMeal returns the number of rows touched. An empty update touches
// nothing and reports whether the meal exists.
func (r *mealRepository) UpdateMeal(ctx context.Context, id uint, update MealUpdate) (int64, error) {
	changes := update.changes()
	if len(changes) == 0 {
		var n int64
		err := r.db.WithContext(ctx).Model(&entities.Meal{}).Where("id = ?", id).Count(&n).Error
		return n, err
	}

	res := r.db.WithContext(ctx).Model(&entities.Meal{}).Where("id = ?", id).Updates(changes)
	return res.RowsAffected, res.Error
}

func (r *mealRepository) DeleteMeals(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return store.DeleteMeals(tx, []uint{id})
	})
}

func (r *mealRepository) GetMealTypeByID(ctx context.Context, id uint) (*entities.MealType, error) {
	return store.GetOne[entities.MealType](ctx, r.db, store.Conditions{"id": id})
}

func (r *mealRepository) GetOrCreateMealType(ctx context.Context, filter MealTypeFilter) (*entities.MealType, bool, error) {
	conds := store.Conditions{"diary_id": filter.DiaryID, "name": filter.Name}
	return store.GetOrCreate(ctx, r.db, conds, func() *entities.MealType {
		return &entities.MealType{DiaryID: filter.DiaryID, Name: filter.Name}
	})
}

func (r *mealRepository) GetMealTypesByDiary(ctx context.Context, diaryID uint) ([]*entities.MealType, error) {
	var mealTypes []*entities.MealType
	if err := r.db.WithContext(ctx).Where("diary_id = ?", diaryID).Order("id").Find(&mealTypes).Error; err != nil {
		return nil, err
	}
	return mealTypes, nil
}

func (r *mealRepository) DeleteMealTypes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return store.DeleteMealTypes(tx, []uint{id})
	})
}
