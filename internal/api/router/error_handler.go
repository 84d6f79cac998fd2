package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api/httperrors"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

// HTTPErrorHandlerConfig controls how internal errors leak to API consumers.
type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig translates handler errors into the public error
// wire format. Internal error details are hidden from the response unless
// configured otherwise; they are always logged.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var code int
		var payload interface{}

		switch e := err.(type) {
		case *httperrors.HTTPError:
			code = int(swag.Int64Value(e.Code))
			payload = e
		case *httperrors.HTTPValidationError:
			code = int(swag.Int64Value(e.Code))
			payload = e
		case *echo.HTTPError:
			code = e.Code
			title := http.StatusText(code)
			if msg, ok := e.Message.(string); ok {
				if code < http.StatusInternalServerError || !config.HideInternalServerErrorDetails {
					title = msg
				}
			}
			payload = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, title)
		default:
			code = http.StatusInternalServerError
			title := http.StatusText(code)
			if !config.HideInternalServerErrorDetails {
				title = err.Error()
			}
			payload = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, title)
		}

		util.LogFromEchoContext(c).Debug().Err(err).Int("status", code).Msg("Returning HTTP error")

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}

		if err != nil {
			util.LogFromEchoContext(c).Error().Err(err).Msg("Failed to write error response")
		}
	}
}
