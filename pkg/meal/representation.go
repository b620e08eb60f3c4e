package meal

import (
	"diet-diary/domain"
	"diet-diary/entities"
)

func totals(meal *entities.Meal) domain.MealTotals {
	if meal == nil {
		return domain.MealTotals{}
	}
	return domain.MealTotals{
		TotalKcal:     meal.TotalKcal,
		TotalCarbs:    meal.TotalCarbs,
		TotalProteins: meal.TotalProteins,
		TotalFat:      meal.TotalFat,
	}
}

// groupIngredients buckets ingredients by meal, keeping their order. Every
// bucket is a non-nil slice so it renders as [] when empty.
func groupIngredients(mealIDs []uint, ingredients []*entities.Ingredient) map[uint][]domain.IngredientItem {
	grouped := make(map[uint][]domain.IngredientItem, len(mealIDs))
	for _, id := range mealIDs {
		grouped[id] = []domain.IngredientItem{}
	}

	for _, ing := range ingredients {
		if ing.MealID == nil {
			continue
		}
		item := domain.IngredientItem{IngredientID: ing.ID, Amount: ing.Amount}
		if ing.Product != nil {
			item.Name = ing.Product.Name
		}
		grouped[*ing.MealID] = append(grouped[*ing.MealID], item)
	}
	return grouped
}

func ingredientItems(grouped map[uint][]domain.IngredientItem, meal *entities.Meal) []domain.IngredientItem {
	if meal == nil {
		return []domain.IngredientItem{}
	}
	if items, ok := grouped[meal.ID]; ok {
		return items
	}
	return []domain.IngredientItem{}
}
