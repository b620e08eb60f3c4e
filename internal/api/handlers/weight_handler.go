package handlers

import (
	"diet-diary/domain"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/utils/form"
	"diet-diary/pkg/weight"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WeightHandler interface {
		GetWeight(c *fiber.Ctx) error
		CreateWeight(c *fiber.Ctx) error
		DeleteWeight(c *fiber.Ctx) error
		GetWeights(c *fiber.Ctx) error
	}

	weightHandler struct {
		weightService weight.WeightService
		binder        *form.Binder
	}
)

func NewWeightHandler(weightService weight.WeightService, validator *validator.Validate) WeightHandler {
	return &weightHandler{
		weightService: weightService,
		binder:        form.NewBinder(validator),
	}
}

func (h *weightHandler) GetWeight(c *fiber.Ctx) error {
	req := new(domain.WeightRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.weightService.GetWeight(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeight, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeight)
}

func (h *weightHandler) CreateWeight(c *fiber.Ctx) error {
	req := new(domain.WeightCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.weightService.CreateWeight(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWeight, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateWeight)
}

func (h *weightHandler) DeleteWeight(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.weightService.DeleteWeight(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteWeight, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWeight)
}

func (h *weightHandler) GetWeights(c *fiber.Ctx) error {
	req := new(domain.WeightsRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.weightService.GetWeights(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeights, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeights)
}
