package keys

import (
	"net/http"

	"github.com/pkg/errors"

	"github/chapool/go-keyring/internal/api/httperrors"
	"github/chapool/go-keyring/internal/keyring"
	"github/chapool/go-keyring/internal/types"
)

// mapKeyringError translates keyring sentinel errors into their public HTTP
// counterparts. Unknown errors pass through and end up as 500s.
func mapKeyringError(err error) error {
	switch {
	case errors.Is(err, keyring.ErrLocked):
		return httperrors.ErrConflictKeyringLocked
	case errors.Is(err, keyring.ErrKeyNotFound):
		return httperrors.ErrNotFoundKey
	case errors.Is(err, keyring.ErrNoSeedSource):
		return httperrors.ErrBadRequestNoSeed
	case errors.Is(err, keyring.ErrMalformedInput):
		return httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			http.StatusText(http.StatusBadRequest),
			[]*types.HTTPValidationErrorDetail{
				types.NewValidationErrorDetail("body", err.Error()),
			},
		)
	case errors.Is(err, keyring.ErrInitialization):
		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Keyring initialization failed.", err.Error())
	default:
		return err
	}
}
