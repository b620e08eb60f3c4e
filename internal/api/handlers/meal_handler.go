package handlers

import (
	"diet-diary/domain"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/utils/form"
	"diet-diary/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		GetMeal(c *fiber.Ctx) error
		CreateMeal(c *fiber.Ctx) error
		UpdateMeal(c *fiber.Ctx) error
		DeleteMeal(c *fiber.Ctx) error
		GetMealType(c *fiber.Ctx) error
		CreateMealType(c *fiber.Ctx) error
		DeleteMealType(c *fiber.Ctx) error
		GetMealTypes(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		binder      *form.Binder
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		binder:      form.NewBinder(validator),
	}
}

func (h *mealHandler) GetMeal(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.GetMeal(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeal, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMeal)
}

func (h *mealHandler) CreateMeal(c *fiber.Ctx) error {
	req := new(domain.MealCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.CreateMeal(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMeal, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateMeal)
}

func (h *mealHandler) UpdateMeal(c *fiber.Ctx) error {
	req := new(domain.MealUpdateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.UpdateMeal(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMeal, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMeal)
}

func (h *mealHandler) DeleteMeal(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.mealService.DeleteMeal(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMeal, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealHandler) GetMealType(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.GetMealType(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealType)
}

func (h *mealHandler) CreateMealType(c *fiber.Ctx) error {
	req := new(domain.MealTypeCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.CreateMealType(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMealType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateMealType)
}

func (h *mealHandler) DeleteMealType(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.mealService.DeleteMealType(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealType, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealType)
}

func (h *mealHandler) GetMealTypes(c *fiber.Ctx) error {
	req := new(domain.MealTypesRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.mealService.GetMealTypes(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealTypes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealTypes)
}
