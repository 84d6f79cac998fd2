package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/api"
)

// GenericPayload is a loose JSON request body for tests.
type GenericPayload map[string]interface{}

// PerformRequest sends a request through the server's echo instance and
// returns the recorded response. A non-nil body is JSON-encoded.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseAndValidate unmarshals the recorded body into v and validates
// it against the response schema.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
	require.NoError(t, v.Validate(strfmt.Default))
}
