package meal

import (
	"context"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/pkg/diary"
)

type (
	MealService interface {
		GetMeal(ctx context.Context, req domain.IDRequest) (domain.MealResponse, error)
		CreateMeal(ctx context.Context, req domain.MealCreateRequest) (domain.MealCreatedResponse, error)
		UpdateMeal(ctx context.Context, req domain.MealUpdateRequest) (domain.MealUpdatedResponse, error)
		DeleteMeal(ctx context.Context, req domain.IDRequest) error

		GetMealType(ctx context.Context, req domain.IDRequest) (domain.MealTypeResponse, error)
		CreateMealType(ctx context.Context, req domain.MealTypeCreateRequest) (domain.MealTypeCreatedResponse, error)
		DeleteMealType(ctx context.Context, req domain.IDRequest) error
		GetMealTypes(ctx context.Context, req domain.MealTypesRequest) ([]domain.MealTypeListItem, error)
	}

	mealService struct {
		mealRepository       MealRepository
		ingredientRepository IngredientRepository
		diaryRepository      diary.DiaryRepository
	}
)

func NewMealService(
	mealRepository MealRepository,
	ingredientRepository IngredientRepository,
	diaryRepository diary.DiaryRepository,
) MealService {
	return &mealService{
		mealRepository:       mealRepository,
		ingredientRepository: ingredientRepository,
		diaryRepository:      diaryRepository,
	}
}

func (s *mealService) GetMeal(ctx context.Context, req domain.IDRequest) (domain.MealResponse, error) {
	meal, err := s.mealRepository.GetMealByID(ctx, req.ID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	grouped, err := s.ingredientsFor(ctx, meal)
	if err != nil {
		return domain.MealResponse{}, err
	}
	return domain.MealResponse{
		MealTotals:  totals(meal),
		Ingredients: ingredientItems(grouped, meal),
	}, nil
}

// CreateMeal returns the meal of the given meal type, creating it on first
// use.
func (s *mealService) CreateMeal(ctx context.Context, req domain.MealCreateRequest) (domain.MealCreatedResponse, error) {
	if _, err := s.mealRepository.GetMealTypeByID(ctx, req.MealTypeID); err != nil {
		return domain.MealCreatedResponse{}, err
	}

	meal, _, err := s.mealRepository.GetOrCreateMeal(ctx, req.MealTypeID)
	if err != nil {
		return domain.MealCreatedResponse{}, err
	}
	return domain.MealCreatedResponse{MealID: meal.ID}, nil
}

func (s *mealService) UpdateMeal(ctx context.Context, req domain.MealUpdateRequest) (domain.MealUpdatedResponse, error) {
	n, err := s.mealRepository.UpdateMeal(ctx, req.ID, MealUpdate{
		TotalKcal:     req.TotalKcal,
		TotalCarbs:    req.TotalCarbs,
		TotalProteins: req.TotalProteins,
		TotalFat:      req.TotalFat,
	})
	if err != nil {
		return domain.MealUpdatedResponse{}, err
	}
	if n == 0 {
		return domain.MealUpdatedResponse{}, domain.ErrNotFound
	}
	return domain.MealUpdatedResponse{ID: req.ID}, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, req domain.IDRequest) error {
	return s.mealRepository.DeleteMeals(ctx, req.ID)
}

func (s *mealService) GetMealType(ctx context.Context, req domain.IDRequest) (domain.MealTypeResponse, error) {
	mealType, err := s.mealRepository.GetMealTypeByID(ctx, req.ID)
	if err != nil {
		return domain.MealTypeResponse{}, err
	}
	meal, err := s.mealRepository.GetMealByMealType(ctx, mealType.ID)
	if err != nil {
		return domain.MealTypeResponse{}, err
	}

	grouped, err := s.ingredientsFor(ctx, meal)
	if err != nil {
		return domain.MealTypeResponse{}, err
	}
	return domain.MealTypeResponse{
		Name:        mealType.Name,
		MealTotals:  totals(meal),
		Ingredients: ingredientItems(grouped, meal),
	}, nil
}

func (s *mealService) CreateMealType(ctx context.Context, req domain.MealTypeCreateRequest) (domain.MealTypeCreatedResponse, error) {
	if _, err := s.diaryRepository.GetDiaryByID(ctx, req.DiaryID); err != nil {
		return domain.MealTypeCreatedResponse{}, err
	}

	mealType, _, err := s.mealRepository.GetOrCreateMealType(ctx, MealTypeFilter{
		DiaryID: req.DiaryID,
		Name:    req.Name,
	})
	if err != nil {
		return domain.MealTypeCreatedResponse{}, err
	}
	return domain.MealTypeCreatedResponse{MealTypeID: mealType.ID}, nil
}

func (s *mealService) DeleteMealType(ctx context.Context, req domain.IDRequest) error {
	return s.mealRepository.DeleteMealTypes(ctx, req.ID)
}

// GetMealTypes renders every meal type of a diary with its meal. A meal type
// without a meal renders with null totals and no ingredients.
func (s *mealService) GetMealTypes(ctx context.Context, req domain.MealTypesRequest) ([]domain.MealTypeListItem, error) {
	if _, err := s.diaryRepository.GetDiaryByID(ctx, req.DiaryID); err != nil {
		return nil, err
	}

	mealTypes, err := s.mealRepository.GetMealTypesByDiary(ctx, req.DiaryID)
	if err != nil {
		return nil, err
	}

	mealTypeIDs := make([]uint, 0, len(mealTypes))
	for _, mt := range mealTypes {
		mealTypeIDs = append(mealTypeIDs, mt.ID)
	}
	meals, err := s.mealRepository.GetMealsByMealTypes(ctx, mealTypeIDs)
	if err != nil {
		return nil, err
	}

	// The first meal of a type wins when several exist.
	byMealType := make(map[uint]*entities.Meal, len(meals))
	mealIDs := make([]uint, 0, len(meals))
	for _, m := range meals {
		if _, ok := byMealType[m.MealTypeID]; !ok {
			byMealType[m.MealTypeID] = m
			mealIDs = append(mealIDs, m.ID)
		}
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByMeals(ctx, mealIDs)
	if err != nil {
		return nil, err
	}
	grouped := groupIngredients(mealIDs, ingredients)

	items := make([]domain.MealTypeListItem, 0, len(mealTypes))
	for _, mt := range mealTypes {
		meal := byMealType[mt.ID]
		items = append(items, domain.MealTypeListItem{
			MealTypeID:  mt.ID,
			Name:        mt.Name,
			MealTotals:  totals(meal),
			Ingredients: ingredientItems(grouped, meal),
		})
	}
	return items, nil
}

func (s *mealService) ingredientsFor(ctx context.Context, meal *entities.Meal) (map[uint][]domain.IngredientItem, error) {
	ingredients, err := s.ingredientRepository.GetIngredientsByMeals(ctx, []uint{meal.ID})
	if err != nil {
		return nil, err
	}
	return groupIngredients([]uint{meal.ID}, ingredients), nil
}
