package handlers

import (
	"diet-diary/domain"
	"diet-diary/internal/api/presenters"
	"diet-diary/internal/utils/form"
	"diet-diary/pkg/activity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		GetDiscipline(c *fiber.Ctx) error
		SearchDisciplines(c *fiber.Ctx) error
		GetActivity(c *fiber.Ctx) error
		CreateActivity(c *fiber.Ctx) error
		DeleteActivity(c *fiber.Ctx) error
		GetActivities(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService   activity.ActivityService
		disciplineService activity.DisciplineService
		binder            *form.Binder
	}
)

func NewActivityHandler(
	activityService activity.ActivityService,
	disciplineService activity.DisciplineService,
	validator *validator.Validate,
) ActivityHandler {
	return &activityHandler{
		activityService:   activityService,
		disciplineService: disciplineService,
		binder:            form.NewBinder(validator),
	}
}

func (h *activityHandler) GetDiscipline(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.disciplineService.GetDiscipline(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDiscipline, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiscipline)
}

func (h *activityHandler) SearchDisciplines(c *fiber.Ctx) error {
	req := new(domain.DisciplineSearchRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.disciplineService.SearchDisciplines(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchDisciplines, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchDisciplines)
}

func (h *activityHandler) GetActivity(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.activityService.GetActivity(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivity, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActivity)
}

func (h *activityHandler) CreateActivity(c *fiber.Ctx) error {
	req := new(domain.ActivityCreateRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.activityService.CreateActivity(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateActivity, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCreateActivity)
}

func (h *activityHandler) DeleteActivity(c *fiber.Ctx) error {
	req := new(domain.IDRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.activityService.DeleteActivity(c.UserContext(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteActivity, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteActivity)
}

func (h *activityHandler) GetActivities(c *fiber.Ctx) error {
	req := new(domain.ActivitiesRequest)
	if err := bind(c, h.binder, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.activityService.GetActivities(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivities, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActivities)
}
