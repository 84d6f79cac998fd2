package httperrors

import (
	"net/http"

	"github/chapool/go-keyring/internal/types"
)

var (
	ErrConflictKeyringLocked = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeKeyringLocked, "Keyring has not been initialized.")
	ErrNotFoundKey           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeKeyNotFound, "Public key is not owned by any key source.")
	ErrBadRequestNoSeed      = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Keyring was not initialized from a seed phrase.")
)
