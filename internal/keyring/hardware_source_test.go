package keyring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/keyring"
)

func TestNewHardwareSourceValidation(t *testing.T) {
	signer := newFakeDeviceSigner()
	publicKey := signer.addKey(t, "device-1", "m/44'/501'/0'/0'")

	_, err := keyring.NewHardwareSource(signer, []keyring.WalletDescriptor{
		{PublicKey: "garbage", Path: "m/44'/501'/0'/0'", Device: "device-1"},
	})
	assert.Error(t, err, "invalid public key")

	_, err = keyring.NewHardwareSource(signer, []keyring.WalletDescriptor{
		{PublicKey: publicKey, Path: "m/44'/501'/0'/0'"},
	})
	assert.Error(t, err, "missing device identifier")

	_, err = keyring.NewHardwareSource(signer, []keyring.WalletDescriptor{
		{PublicKey: publicKey, Path: "m/44'/501'/0'/0'", Device: "device-1"},
		{PublicKey: publicKey, Path: "m/44'/501'/1'/0'", Device: "device-1"},
	})
	assert.Error(t, err, "duplicate public key")
}

func TestHardwareSourceDescriptorOrder(t *testing.T) {
	signer := newFakeDeviceSigner()
	first := signer.addKey(t, "device-1", "m/44'/501'/0'/0'")
	second := signer.addKey(t, "device-2", "m/44'/501'/0'/0'")

	source, err := keyring.NewHardwareSource(signer, []keyring.WalletDescriptor{
		{PublicKey: first, Path: "m/44'/501'/0'/0'", Device: "device-1"},
		{PublicKey: second, Path: "m/44'/501'/0'/0'", Device: "device-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{first, second}, source.PublicKeys())
	assert.Equal(t, 2, source.Len())

	descriptor, ok := source.Descriptor(second)
	require.True(t, ok)
	assert.Equal(t, "device-2", descriptor.Device)

	require.NoError(t, source.DeletePublicKey(first))
	assert.Equal(t, []string{second}, source.PublicKeys())

	err = source.DeletePublicKey(first)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}
