package keys_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/test"
	"github/chapool/go-keyring/internal/types"
)

func TestPostDeriveKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/derive", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.DeriveKeyResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "m/44'/501'/1'/0'", swag.StringValue(response.Path))
		assert.Equal(t, "derived account 2", swag.StringValue(response.Name))
		assert.NotEqual(t, swag.StringValue(created.Accounts[0].PublicKey), swag.StringValue(response.PublicKey))
	})
}

func TestPostDeriveKeyLocked(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/derive", nil, nil)
		assert.Equal(t, http.StatusConflict, res.Result().StatusCode)
	})
}

func TestPostAddDerivationPath(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		payload := test.GenericPayload{"path": "m/44'/501'/42'/0'"}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/derivation-path", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.DeriveKeyResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "m/44'/501'/42'/0'", swag.StringValue(response.Path))

		// the same path twice is rejected
		res = test.PerformRequest(t, s, "POST", "/api/v1/keys/derivation-path", payload, nil)
		assert.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)
	})
}

func TestPostAddDerivationPathMalformed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		for _, path := range []string{"44'/501'/1'/0'", "m/44/501'/1'/0'", "m/44'/abc'/1'/0'"} {
			res := test.PerformRequest(t, s, "POST", "/api/v1/keys/derivation-path", test.GenericPayload{"path": path}, nil)
			assert.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

			var response types.PublicHTTPValidationError
			test.ParseResponseAndValidate(t, res, &response)
			assert.NotEmpty(t, response.ValidationErrors)
		}
	})
}

func TestPostDeriveKeyNonZeroInitialPath(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		initSeedKeyring(t, s, "m/44'/501'/1'/0'")

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/derive", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.DeriveKeyResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "m/44'/501'/0'/0'", swag.StringValue(response.Path))

		res = test.PerformRequest(t, s, "POST", "/api/v1/keys/derive", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		test.ParseResponseAndValidate(t, res, &response)
		assert.Equal(t, "m/44'/501'/2'/0'", swag.StringValue(response.Path))
	})
}

func TestPostDeriveKeyHardwareKeyring(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		transport := test.NewMockTransport(t, "m/44'/501'/0'/0'")
		deviceID := s.Devices.Register(transport)

		descriptors, err := s.Devices.Enumerate(t.Context(), deviceID)
		require.NoError(t, err)
		require.Len(t, descriptors, 1)

		payload := test.GenericPayload{
			"descriptors": []test.GenericPayload{{
				"public_key": descriptors[0].PublicKey,
				"path":       descriptors[0].Path,
				"device":     descriptors[0].Device,
			}},
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/init/hardware", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.InitKeyringResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.Accounts, 1)
		assert.Equal(t, "hardware account 1", swag.StringValue(response.Accounts[0].Name))

		// a hardware-only keyring has no seed source to derive from
		deriveRes := test.PerformRequest(t, s, "POST", "/api/v1/keys/derive", nil, nil)
		assert.Equal(t, http.StatusBadRequest, deriveRes.Result().StatusCode)

		// and its keys cannot be exported
		exportRes := test.PerformRequest(t, s, "POST", "/api/v1/keys/export", test.GenericPayload{"public_key": descriptors[0].PublicKey}, nil)
		assert.Equal(t, http.StatusNotFound, exportRes.Result().StatusCode)
	})
}
