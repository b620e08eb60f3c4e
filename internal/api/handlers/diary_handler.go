package handlers

import (
	"diet-diary/domain"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/utils/form"
	"diet-diary/pkg/diary"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DiaryHandler interface {
		GetDiary(c *fiber.Ctx) error
		CreateDiary(c *fiber.Ctx) error
	}

	diaryHandler struct {
		diaryService diary.DiaryService
		binder       *form.Binder
	}
)

func NewDiaryHandler(diaryService diary.DiaryService, validator *validator.Validate) DiaryHandler {
	return &diaryHandler{
		diaryService: diaryService,
		binder:       form.NewBinder(validator),
	}
}

func (h *diaryHandler) GetDiary(c *fiber.Ctx) error {
	req := new(domain.DiaryRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.diaryService.GetDiary(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDiary, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiary)
}

func (h *diaryHandler) CreateDiary(c *fiber.Ctx) error {
	req := new(domain.DiaryRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.diaryService.CreateDiary(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDiary, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateDiary)
}
