package presenters

import (
	"errors"

	"diet-diary/domain"
	"diet-diary/internal/middleware"
	"diet-diary/internal/utils/form"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SuccessResponse writes data as the whole response body.
func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	if data == nil {
		data = domain.Empty{}
	}
	middleware.Logger(c).Debug(message)
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse renders validation failures as a field -> messages map. Any
// other failure yields an empty object.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	var fieldErrs form.Errors
	if errors.As(err, &fieldErrs) {
		return c.Status(statusCode).JSON(fieldErrs)
	}

	logger := middleware.Logger(c)
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrMultipleFound),
		errors.Is(err, domain.ErrInvalidCredentials):
		logger.Debug(message, zap.Error(err))
	case errors.Is(err, domain.ErrIntegrity):
		logger.Warn(message, zap.Error(err))
	default:
		logger.Error(message, zap.Error(err))
	}
	return c.Status(statusCode).JSON(domain.Empty{})
}

// ErrorHandler renders errors that escape the handlers, such as unmatched
// routes and recovered panics, as an empty object.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		middleware.Logger(c).Error("unhandled error", zap.Error(err))
	}
	return c.Status(code).JSON(domain.Empty{})
}
