package domain

var (
	MessageSuccessGetProduct       = "product retrieved successfully"
	MessageSuccessCreateProduct    = "product created successfully"
	MessageSuccessSearchProducts   = "products found successfully"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedGetProduct       = "failed to get product"
	MessageFailedCreateProduct    = "failed to create product"
	MessageFailedSearchProducts   = "failed to search products"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
)

type (
	ProductCreateRequest struct {
		Name     string  `json:"name" form:"name" validate:"notblank,max=30"`
		Kcal     float64 `json:"kcal" form:"kcal"`
		Carbs    float64 `json:"carbs" form:"carbs"`
		Proteins float64 `json:"proteins" form:"proteins"`
		Fat      float64 `json:"fat" form:"fat"`
	}

	ProductSearchRequest struct {
		Name string `form:"name" validate:"notblank"`
	}

	ProductResponse struct {
		Name     string  `json:"name"`
		Kcal     float64 `json:"kcal"`
		Carbs    float64 `json:"carbs"`
		Proteins float64 `json:"proteins"`
		Fat      float64 `json:"fat"`
	}

	ProductCreatedResponse struct {
		ProductID uint `json:"product_id"`
	}

	ProductListItem struct {
		ProductID uint   `json:"product_id"`
		Name      string `json:"name"`
	}

	IngredientCreateRequest struct {
		ProductID uint    `form:"product_id"`
		MealID    uint    `form:"meal_id"`
		Amount    float64 `form:"amount"`
	}

	IngredientCreatedResponse struct {
		IngredientID uint `json:"ingredient_id"`
	}
)
