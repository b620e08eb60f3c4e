package meal

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetIngredientsByMeals(ctx context.Context, mealIDs []uint) ([]*entities.Ingredient, error)
		GetOrCreateIngredient(ctx context.Context, filter IngredientFilter) (*entities.Ingredient, bool, error)
		DeleteIngredients(ctx context.Context, id uint) error
	}

	IngredientFilter struct {
		ProductID uint
		MealID    uint
		Amount    float64
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

// GetIngredientsByMeals loads the ingredients of every given meal with their
// products, in insertion order.
func (r *ingredientRepository) GetIngredientsByMeals(ctx context.Context, mealIDs []uint) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(mealIDs) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("meal_id IN ?", mealIDs).
		Order("id").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetOrCreateIngredient(ctx context.Context, filter IngredientFilter) (*entities.Ingredient, bool, error) {
	conds := store.Conditions{
		"product_id": filter.ProductID,
		"meal_id":    filter.MealID,
		"amount":     filter.Amount,
	}
	return store.GetOrCreate(ctx, r.db, conds, func() *entities.Ingredient {
		mealID := filter.MealID
		return &entities.Ingredient{
			ProductID: filter.ProductID,
			MealID:    &mealID,
			Amount:    filter.Amount,
		}
	})
}

func (r *ingredientRepository) DeleteIngredients(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}
