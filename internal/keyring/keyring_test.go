package keyring_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/keyring"
)

const testMnemonic = "test test test test test test test test test test test junk"

// memNameStore is an in-memory NameStore for tests.
type memNameStore struct {
	names map[string]string
	cold  map[string]bool
}

func newMemNameStore() *memNameStore {
	return &memNameStore{
		names: make(map[string]string),
		cold:  make(map[string]bool),
	}
}

func (m *memNameStore) SetName(_ context.Context, publicKey string, name string) error {
	m.names[publicKey] = name
	return nil
}

func (m *memNameStore) SetColdFlag(_ context.Context, publicKey string, cold bool) error {
	m.cold[publicKey] = cold
	return nil
}

// fakeDeviceSigner signs with in-process keys, keyed by device ID and path.
type fakeDeviceSigner struct {
	keys map[string]map[string]ed25519.PrivateKey
}

func newFakeDeviceSigner() *fakeDeviceSigner {
	return &fakeDeviceSigner{keys: make(map[string]map[string]ed25519.PrivateKey)}
}

func (f *fakeDeviceSigner) addKey(t *testing.T, deviceID string, path string) string {
	t.Helper()

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	if f.keys[deviceID] == nil {
		f.keys[deviceID] = make(map[string]ed25519.PrivateKey)
	}
	f.keys[deviceID][path] = key

	return base58.Encode(key.Public().(ed25519.PublicKey))
}

func (f *fakeDeviceSigner) Sign(_ context.Context, deviceID string, path string, message []byte) (string, error) {
	key, ok := f.keys[deviceID][path]
	if !ok {
		return "", errors.Errorf("no key on device %s at path %s", deviceID, path)
	}

	return base58.Encode(ed25519.Sign(key, message)), nil
}

func newSeedKeyring(t *testing.T, paths ...string) (*keyring.Keyring, *memNameStore, []keyring.Account) {
	t.Helper()

	names := newMemNameStore()
	k := keyring.New(names, newFakeDeviceSigner())

	accounts, err := k.InitFromSeed(t.Context(), testMnemonic, paths)
	require.NoError(t, err)

	return k, names, accounts
}

func TestKeyringLockedOperations(t *testing.T) {
	k := keyring.New(newMemNameStore(), newFakeDeviceSigner())
	require.False(t, k.Unlocked())

	_, err := k.DeriveNextKey(t.Context())
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.AddDerivationPath(t.Context(), "m/44'/501'/9'/0'")
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.ImportSecretKey(t.Context(), "whatever", "")
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.ExportSecretKey("somekey")
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.SignMessage(t.Context(), "somekey", "deadbeef")
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.Mnemonic()
	assert.ErrorIs(t, err, keyring.ErrLocked)

	_, err = k.Serialize()
	assert.ErrorIs(t, err, keyring.ErrLocked)

	assert.Nil(t, k.PublicKeys())
}

func TestInitFromSeed(t *testing.T) {
	k, names, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'")

	require.Len(t, accounts, 1)
	assert.Equal(t, "derived account 1", accounts[0].Name)
	assert.Equal(t, accounts[0].Name, names.names[accounts[0].PublicKey])
	assert.Equal(t, accounts[0].PublicKey, k.ActiveWallet())
	assert.True(t, k.Unlocked())

	mnemonic, err := k.Mnemonic()
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestInitFromSeedInvalidMnemonic(t *testing.T) {
	k := keyring.New(newMemNameStore(), newFakeDeviceSigner())

	_, err := k.InitFromSeed(t.Context(), "not a mnemonic", nil)
	assert.ErrorIs(t, err, keyring.ErrInitialization)
	assert.False(t, k.Unlocked())
}

func TestInitFromSeedNoPaths(t *testing.T) {
	k, _, accounts := newSeedKeyring(t)

	assert.Empty(t, accounts)
	assert.Empty(t, k.ActiveWallet())
	assert.True(t, k.Unlocked())
}

func TestDeriveNextKey(t *testing.T) {
	k, _, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'")

	derived, err := k.DeriveNextKey(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "m/44'/501'/1'/0'", derived.Path)
	assert.Equal(t, "derived account 2", derived.Name)
	assert.NotEqual(t, accounts[0].PublicKey, derived.PublicKey)

	// the active wallet stays on the first key
	assert.Equal(t, accounts[0].PublicKey, k.ActiveWallet())
	assert.Equal(t, []string{accounts[0].PublicKey, derived.PublicKey}, k.PublicKeys())
}

func TestAddDerivationPath(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	derived, err := k.AddDerivationPath(t.Context(), "m/44'/501'/42'/0'")
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/42'/0'", derived.Path)

	// the same path cannot be added twice
	_, err = k.AddDerivationPath(t.Context(), "m/44'/501'/42'/0'")
	assert.Error(t, err)

	// sequential derivation fills the lowest free account index
	next, err := k.DeriveNextKey(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/1'/0'", next.Path)
}

func TestDeriveNextKeySkipsUsedPaths(t *testing.T) {
	// initial paths need not start at account 0
	k, _, _ := newSeedKeyring(t, "m/44'/501'/1'/0'")

	first, err := k.DeriveNextKey(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/0'/0'", first.Path)

	second, err := k.DeriveNextKey(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/2'/0'", second.Path)

	third, err := k.DeriveNextKey(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/3'/0'", third.Path)
}

func TestAddDerivationPathMalformed(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	_, err := k.AddDerivationPath(t.Context(), "44'/501'/0'/0'")
	assert.ErrorIs(t, err, keyring.ErrMalformedInput)

	_, err = k.AddDerivationPath(t.Context(), "m/44/501'/1'/0'")
	assert.ErrorIs(t, err, keyring.ErrMalformedInput)
}

func TestDeriveWithoutSeedSource(t *testing.T) {
	names := newMemNameStore()
	signer := newFakeDeviceSigner()
	publicKey := signer.addKey(t, "device-1", "m/44'/501'/0'/0'")

	k := keyring.New(names, signer)
	_, err := k.InitFromHardware(t.Context(), []keyring.WalletDescriptor{
		{PublicKey: publicKey, Path: "m/44'/501'/0'/0'", Device: "device-1"},
	})
	require.NoError(t, err)

	_, err = k.DeriveNextKey(t.Context())
	assert.ErrorIs(t, err, keyring.ErrNoSeedSource)

	_, err = k.AddDerivationPath(t.Context(), "m/44'/501'/1'/0'")
	assert.ErrorIs(t, err, keyring.ErrNoSeedSource)

	_, err = k.Mnemonic()
	assert.ErrorIs(t, err, keyring.ErrNoSeedSource)
}

func TestImportSecretKey(t *testing.T) {
	k, names, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	secret := base58.Encode(key)

	account, err := k.ImportSecretKey(t.Context(), secret, "")
	require.NoError(t, err)
	assert.Equal(t, "imported account 1", account.Name)
	assert.Equal(t, base58.Encode(key.Public().(ed25519.PublicKey)), account.PublicKey)
	assert.Equal(t, account.Name, names.names[account.PublicKey])

	// exporting round-trips the 64 byte secret
	exported, err := k.ExportSecretKey(account.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, secret, exported)

	// a duplicate import is rejected
	_, err = k.ImportSecretKey(t.Context(), secret, "dup")
	assert.Error(t, err)
}

func TestImportSecretKeySeedForm(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	seed := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	key := ed25519.NewKeyFromSeed(seed)

	account, err := k.ImportSecretKey(t.Context(), base58.Encode(seed), "my key")
	require.NoError(t, err)
	assert.Equal(t, "my key", account.Name)
	assert.Equal(t, base58.Encode(key.Public().(ed25519.PublicKey)), account.PublicKey)

	// export always yields the expanded form
	exported, err := k.ExportSecretKey(account.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(key), exported)
}

func TestSignAcrossSources(t *testing.T) {
	k, _, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'")

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	imported, err := k.ImportSecretKey(t.Context(), base58.Encode(key), "")
	require.NoError(t, err)

	message := []byte("transfer 1 token")
	encoded := base58.Encode(message)

	for _, publicKey := range []string{accounts[0].PublicKey, imported.PublicKey} {
		signature, err := k.SignTransaction(t.Context(), publicKey, encoded)
		require.NoError(t, err)

		rawSignature, err := base58.Decode(signature)
		require.NoError(t, err)

		rawPublicKey, err := base58.Decode(publicKey)
		require.NoError(t, err)

		assert.True(t, ed25519.Verify(ed25519.PublicKey(rawPublicKey), message, rawSignature))
	}
}

func TestSignRejectsInvalidMessage(t *testing.T) {
	k, _, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'")

	_, err := k.SignMessage(t.Context(), accounts[0].PublicKey, "not-base58-0OIl")
	assert.ErrorIs(t, err, keyring.ErrMalformedInput)
}

func TestSignUnknownKey(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	_, err := k.SignMessage(t.Context(), "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofM", base58.Encode([]byte("x")))
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestInitFromHardware(t *testing.T) {
	names := newMemNameStore()
	signer := newFakeDeviceSigner()
	first := signer.addKey(t, "device-1", "m/44'/501'/0'/0'")
	second := signer.addKey(t, "device-1", "m/44'/501'/1'/0'")

	k := keyring.New(names, signer)
	accounts, err := k.InitFromHardware(t.Context(), []keyring.WalletDescriptor{
		{PublicKey: first, Path: "m/44'/501'/0'/0'", Device: "device-1"},
		{PublicKey: second, Path: "m/44'/501'/1'/0'", Device: "device-1"},
	})
	require.NoError(t, err)

	require.Len(t, accounts, 2)
	assert.Equal(t, "hardware account 1", accounts[0].Name)
	assert.Equal(t, "hardware account 2", accounts[1].Name)
	assert.Equal(t, first, k.ActiveWallet())
	assert.True(t, names.cold[first])
	assert.True(t, names.cold[second])

	// signing is delegated to the device
	message := []byte("approve")
	signature, err := k.SignTransaction(t.Context(), second, base58.Encode(message))
	require.NoError(t, err)

	rawSignature, err := base58.Decode(signature)
	require.NoError(t, err)
	rawPublicKey, err := base58.Decode(second)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(ed25519.PublicKey(rawPublicKey), message, rawSignature))

	// hardware keys hold no exportable secret
	_, err = k.ExportSecretKey(first)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestInitFromHardwareRequiresDescriptors(t *testing.T) {
	k := keyring.New(newMemNameStore(), newFakeDeviceSigner())

	_, err := k.InitFromHardware(t.Context(), nil)
	assert.ErrorIs(t, err, keyring.ErrInitialization)
	assert.False(t, k.Unlocked())
}

func TestReinitDiscardsState(t *testing.T) {
	k, _, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'", "m/44'/501'/1'/0'")
	require.Len(t, accounts, 2)

	again, err := k.InitFromSeed(t.Context(), testMnemonic, []string{"m/44'/501'/5'/0'"})
	require.NoError(t, err)

	require.Len(t, again, 1)
	assert.Equal(t, []string{again[0].PublicKey}, k.PublicKeys())
	assert.Equal(t, again[0].PublicKey, k.ActiveWallet())
	assert.Empty(t, k.DeletedKeys())
}

func TestSetActiveWalletUnchecked(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	// any value is accepted, membership is the caller's concern
	k.SetActiveWallet("externally-owned-key")
	assert.Equal(t, "externally-owned-key", k.ActiveWallet())
}

func TestDeleteKey(t *testing.T) {
	k, _, accounts := newSeedKeyring(t, "m/44'/501'/0'/0'", "m/44'/501'/1'/0'")

	require.NoError(t, k.DeleteKey(t.Context(), accounts[1].PublicKey))
	assert.False(t, k.HasPublicKey(accounts[1].PublicKey))
	assert.Equal(t, []string{accounts[0].PublicKey}, k.PublicKeys())

	// deletion does not touch the active wallet or the deleted set
	assert.Equal(t, accounts[0].PublicKey, k.ActiveWallet())
	assert.Empty(t, k.DeletedKeys())

	err := k.DeleteKey(t.Context(), accounts[1].PublicKey)
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestDeleteActiveHardwareKey(t *testing.T) {
	names := newMemNameStore()
	signer := newFakeDeviceSigner()
	first := signer.addKey(t, "device-1", "m/44'/501'/0'/0'")
	second := signer.addKey(t, "device-1", "m/44'/501'/1'/0'")

	k := keyring.New(names, signer)
	_, err := k.InitFromHardware(t.Context(), []keyring.WalletDescriptor{
		{PublicKey: first, Path: "m/44'/501'/0'/0'", Device: "device-1"},
		{PublicKey: second, Path: "m/44'/501'/1'/0'", Device: "device-1"},
	})
	require.NoError(t, err)
	require.Equal(t, first, k.ActiveWallet())

	require.NoError(t, k.DeleteKey(t.Context(), first))

	// the active wallet keeps pointing at the deleted key
	assert.Equal(t, first, k.ActiveWallet())
	assert.False(t, k.HasPublicKey(first))
	assert.Equal(t, []string{second}, k.PublicKeys())
}

func TestMarkDeletedDeduplicates(t *testing.T) {
	k, _, _ := newSeedKeyring(t, "m/44'/501'/0'/0'")

	k.MarkDeleted("key-a")
	k.MarkDeleted("key-b")
	k.MarkDeleted("key-a")

	assert.Equal(t, []string{"key-a", "key-b"}, k.DeletedKeys())
}
