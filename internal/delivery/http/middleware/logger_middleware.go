package middleware

import (
	"log/slog"

	deliveryctx "stockhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware attaches a request id and a request-scoped logger to the
// context so the layers below can log with correlation.
type LoggerMiddleware struct {
	logger *slog.Logger
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger}
}

// Handle wires the request id through the echo and request contexts.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
		if requestID == "" {
			requestID = deliveryctx.GetRequestID(c)
		}
		deliveryctx.SetRequestID(c, requestID)
		c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliveryctx.WithRequestID(c.Request().Context(), requestID)
		ctx = deliveryctx.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
