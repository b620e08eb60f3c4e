package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

const loggerKey = "logger"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestLogger() fiber.Handler
		Metrics() fiber.Handler
		MetricsHandler() fiber.Handler
	}

	middleware struct {
		logger  *zap.Logger
		metrics *Metrics
	}
)

func NewMiddleware(logger *zap.Logger, metrics *Metrics) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &middleware{
		logger:  logger,
		metrics: metrics,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	})
}

// RequestLogger stores a request-scoped logger for handlers and logs every
// request once it has been served. It expects the requestid middleware to run
// first.
func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

		reqLogger := m.logger.With(zap.String("request_id", requestID))
		c.Locals(loggerKey, reqLogger)

		err := c.Next()
		if err != nil {
			// Let the error handler write the response before logging its status.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		reqLogger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

// Logger returns the request-scoped logger, or a no-op logger outside a
// request.
func Logger(c *fiber.Ctx) *zap.Logger {
	if l, ok := c.Locals(loggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
