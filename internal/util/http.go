package util

import (
	goerrors "errors"
	"net/http"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/go-keyring/internal/api/httperrors"
	"github/chapool/go-keyring/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it, turning
// validation failures into a public HTTPValidationError.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("failed to access the default binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response payload and writes it as JSON.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		return err
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		details := formatValidationErrors(err)

		LogFromEchoContext(c).Debug().Err(err).Msg("Payload validation failed")

		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			http.StatusText(http.StatusBadRequest),
			details,
		)
	}

	return nil
}

func formatValidationErrors(err error) []*types.HTTPValidationErrorDetail {
	var composite *openapierrors.CompositeError
	if goerrors.As(err, &composite) {
		details := make([]*types.HTTPValidationErrorDetail, 0, len(composite.Errors))
		for _, e := range composite.Errors {
			details = append(details, formatValidationErrors(e)...)
		}

		return details
	}

	var validation *openapierrors.Validation
	if goerrors.As(err, &validation) {
		return []*types.HTTPValidationErrorDetail{
			{
				Key:   swag.String(validation.Name),
				In:    swag.String(validation.In),
				Error: swag.String(validation.Error()),
			},
		}
	}

	return []*types.HTTPValidationErrorDetail{
		{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		},
	}
}
