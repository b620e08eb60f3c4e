package handlers

import (
	"diet-diary/domain"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/utils/form"
	"diet-diary/pkg/meal"
	"diet-diary/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProduct(c *fiber.Ctx) error
		CreateProduct(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	productHandler struct {
		productService    product.ProductService
		ingredientService meal.IngredientService
		binder            *form.Binder
	}
)

func NewProductHandler(
	productService product.ProductService,
	ingredientService meal.IngredientService,
	validator *validator.Validate,
) ProductHandler {
	return &productHandler{
		productService:    productService,
		ingredientService: ingredientService,
		binder:            form.NewBinder(validator),
	}
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.productService.GetProduct(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.ProductCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.productService.CreateProduct(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	req := new(domain.ProductSearchRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.productService.SearchProducts(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchProducts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchProducts)
}

func (h *productHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.IngredientCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateIngredient)
}

func (h *productHandler) DeleteIngredient(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.ingredientService.DeleteIngredient(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}
