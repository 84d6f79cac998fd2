package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFromContext returns the request-scoped logger previously attached with
// WithLogger, falling back to the global logger. Logging can be disabled for a
// context via CTXKeyDisableLogger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	l := log.Ctx(ctx)

	if disabled, ok := ctx.Value(CTXKeyDisableLogger).(bool); ok && disabled {
		disabledLogger := zerolog.Nop()
		l = &disabledLogger
	}

	return l
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// LogFromEchoContext returns the logger scoped to an echo request context.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}

// RequestIDFromContext returns the request ID attached by the request ID
// middleware, empty if absent.
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	if !ok {
		return ""
	}

	return id
}
