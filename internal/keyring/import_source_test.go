package keyring_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/keyring"
)

func TestImportSourceRejectsMalformedSecrets(t *testing.T) {
	source := keyring.NewImportSource()

	_, err := source.ImportSecretKey("not-base58-0OIl")
	assert.ErrorIs(t, err, keyring.ErrMalformedInput, "invalid base58")

	_, err = source.ImportSecretKey(base58.Encode([]byte("too short")))
	assert.ErrorIs(t, err, keyring.ErrMalformedInput, "invalid length")

	// a 64 byte secret whose public half does not match its seed half
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	corrupted := append(ed25519.PrivateKey(nil), key...)
	corrupted[ed25519.SeedSize] ^= 0xff

	_, err = source.ImportSecretKey(base58.Encode(corrupted))
	assert.ErrorIs(t, err, keyring.ErrMalformedInput, "mismatched public half")

	assert.Equal(t, 0, source.Len())
}

func TestImportSourceDelete(t *testing.T) {
	source := keyring.NewImportSource()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	publicKey, err := source.ImportSecretKey(base58.Encode(key))
	require.NoError(t, err)
	assert.Equal(t, []string{publicKey}, source.PublicKeys())

	require.NoError(t, source.DeletePublicKey(publicKey))
	assert.Empty(t, source.PublicKeys())

	err = source.DeletePublicKey(publicKey)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}
