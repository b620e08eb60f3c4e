package meal

import (
	"context"

	"diet-diary/domain"
	"diet-diary/pkg/product"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (domain.IngredientCreatedResponse, error)
		DeleteIngredient(ctx context.Context, req domain.IDRequest) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		mealRepository       MealRepository
		productRepository    product.ProductRepository
	}
)

func NewIngredientService(
	ingredientRepository IngredientRepository,
	mealRepository MealRepository,
	productRepository product.ProductRepository,
) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		mealRepository:       mealRepository,
		productRepository:    productRepository,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientCreateRequest) (domain.IngredientCreatedResponse, error) {
	if _, err := s.productRepository.GetProductByID(ctx, req.ProductID); err != nil {
		return domain.IngredientCreatedResponse{}, err
	}
	if _, err := s.mealRepository.GetMealByID(ctx, req.MealID); err != nil {
		return domain.IngredientCreatedResponse{}, err
	}

	ingredient, _, err := s.ingredientRepository.GetOrCreateIngredient(ctx, IngredientFilter{
		ProductID: req.ProductID,
		MealID:    req.MealID,
		Amount:    req.Amount,
	})
	if err != nil {
		return domain.IngredientCreatedResponse{}, err
	}
	return domain.IngredientCreatedResponse{IngredientID: ingredient.ID}, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, req domain.IDRequest) error {
	return s.ingredientRepository.DeleteIngredients(ctx, req.ID)
}
