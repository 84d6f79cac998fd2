package keys_test

import (
	"crypto/ed25519"
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/test"
	"github/chapool/go-keyring/internal/types"
)

func TestPostSignTransaction(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := initSeedKeyring(t, s, "m/44'/501'/0'/0'")
		publicKey := swag.StringValue(created.Accounts[0].PublicKey)

		message := []byte("transfer 10 tokens")
		payload := test.GenericPayload{
			"public_key": publicKey,
			"message":    base58.Encode(message),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/sign-transaction", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.SignResponse
		test.ParseResponseAndValidate(t, res, &response)

		rawSignature, err := base58.Decode(swag.StringValue(response.Signature))
		require.NoError(t, err)
		rawPublicKey, err := base58.Decode(publicKey)
		require.NoError(t, err)

		assert.True(t, ed25519.Verify(ed25519.PublicKey(rawPublicKey), message, rawSignature))
	})
}

func TestPostSignMessageUnknownKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		_, publicKey := newTestSecretKey(t)
		payload := test.GenericPayload{
			"public_key": publicKey,
			"message":    base58.Encode([]byte("hello")),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/sign-message", payload, nil)
		assert.Equal(t, http.StatusNotFound, res.Result().StatusCode)
	})
}

func TestPostSignMessageLocked(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"public_key": "somekey",
			"message":    base58.Encode([]byte("hello")),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/sign-message", payload, nil)
		assert.Equal(t, http.StatusConflict, res.Result().StatusCode)
	})
}

func TestPostSignMessageNotBase58(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		payload := test.GenericPayload{
			"public_key": swag.StringValue(created.Accounts[0].PublicKey),
			"message":    "not-base58-0OIl",
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/sign-message", payload, nil)
		assert.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseAndValidate(t, res, &response)
		assert.NotEmpty(t, response.ValidationErrors)
	})
}

func TestPostSignMissingMessage(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		created := initSeedKeyring(t, s, "m/44'/501'/0'/0'")

		payload := test.GenericPayload{
			"public_key": swag.StringValue(created.Accounts[0].PublicKey),
		}

		res := test.PerformRequest(t, s, "POST", "/api/v1/keys/sign-message", payload, nil)
		assert.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}
