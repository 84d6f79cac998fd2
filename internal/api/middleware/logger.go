package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github/chapool/go-keyring/internal/util"
)

// Logger attaches a request-scoped zerolog logger (carrying the request ID) to
// the request context and logs every handled request.
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("request_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := context.WithValue(req.Context(), util.CTXKeyRequestID, id)
			c.SetRequest(req.WithContext(l.WithContext(ctx)))

			start := time.Now()
			err := next(c)

			l.Debug().
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("Handled request")

			return err
		}
	}
}
