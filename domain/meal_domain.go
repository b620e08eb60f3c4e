package domain

var (
	MessageSuccessGetMeal        = "meal retrieved successfully"
	MessageSuccessCreateMeal     = "meal created successfully"
	MessageSuccessUpdateMeal     = "meal updated successfully"
	MessageSuccessDeleteMeal     = "meal deleted successfully"
	MessageSuccessGetMealType    = "meal type retrieved successfully"
	MessageSuccessCreateMealType = "meal type created successfully"
	MessageSuccessDeleteMealType = "meal type deleted successfully"
	MessageSuccessGetMealTypes   = "meal types retrieved successfully"

	MessageFailedGetMeal    = "failed to get meal"
	MessageFailedCreateMeal = "failed to create meal"
	MessageFailedUpdateMeal = "failed to update meal"
	MessageFailedDeleteMeal = "failed to delete meal"

	MessageFailedGetMealType    = "failed to get meal type"
	MessageFailedCreateMealType = "failed to create meal type"
	MessageFailedDeleteMealType = "failed to delete meal type"
	MessageFailedGetMealTypes   = "failed to get meal types"
)

type (
	MealCreateRequest struct {
		MealTypeID uint `form:"meal_type_id"`
	}

	// MealUpdateRequest writes only the totals that are present.
	MealUpdateRequest struct {
		ID            uint     `form:"id"`
		TotalKcal     *float64 `form:"total_kcal,omitempty"`
		TotalCarbs    *float64 `form:"total_carbs,omitempty"`
		TotalProteins *float64 `form:"total_proteins,omitempty"`
		TotalFat      *float64 `form:"total_fat,omitempty"`
	}

	MealTypeCreateRequest struct {
		DiaryID uint   `form:"diary_id"`
		Name    string `form:"name" validate:"notblank,max=30"`
	}

	MealTypesRequest struct {
		DiaryID uint `form:"diary_id"`
	}

	IngredientItem struct {
		IngredientID uint    `json:"ingredient_id"`
		Name         string  `json:"name"`
		Amount       float64 `json:"amount"`
	}

	MealTotals struct {
		TotalKcal     *float64 `json:"total_kcal"`
		TotalCarbs    *float64 `json:"total_carbs"`
		TotalProteins *float64 `json:"total_proteins"`
		TotalFat      *float64 `json:"total_fat"`
	}

	MealResponse struct {
		MealTotals
		Ingredients []IngredientItem `json:"ingredients"`
	}

	MealCreatedResponse struct {
		MealID uint `json:"meal_id"`
	}

	MealUpdatedResponse struct {
		ID uint `json:"id"`
	}

	MealTypeResponse struct {
		Name string `json:"name"`
		MealTotals
		Ingredients []IngredientItem `json:"ingredients"`
	}

	MealTypeCreatedResponse struct {
		MealTypeID uint `json:"meal_type_id"`
	}

	MealTypeListItem struct {
		MealTypeID uint   `json:"meal_type_id"`
		Name       string `json:"name"`
		MealTotals
		Ingredients []IngredientItem `json:"ingredients"`
	}
)
