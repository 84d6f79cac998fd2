// Package keyring implements the key-custody facade for one blockchain
// network. It unifies seed-derived, individually imported and hardware-backed
// keys behind a single addressable interface so callers can sign, export and
// manage keys without knowing which source a public key came from.
//
// A Keyring is built for single-writer, sequential use. It carries no internal
// locking; serializing access is the owning service's job.
package keyring

import (
	"context"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github/chapool/go-keyring/internal/util"
)

// Keyring routes every key operation to the owning key source. It is locked
// until InitFromSeed or InitFromHardware has run; Restore re-enters the
// unlocked state directly from a persisted snapshot.
type Keyring struct {
	names   NameStore
	devices DeviceSigner

	seed     *SeedSource
	imported *ImportSource
	hardware *HardwareSource

	active  string
	deleted []string
}

// New returns a locked keyring. Every operation except the initializers fails
// with ErrLocked until one of them has run.
func New(names NameStore, devices DeviceSigner) *Keyring {
	return &Keyring{
		names:   names,
		devices: devices,
	}
}

// Unlocked reports whether one of the initializers has run.
func (k *Keyring) Unlocked() bool {
	return k.imported != nil && k.hardware != nil
}

// InitFromSeed builds the seed-derived source from a mnemonic and the given
// derivation paths, order-preserving, alongside empty imported and hardware
// sources. Any prior state is discarded. The first derived key becomes the
// active wallet and every derived key gets a persisted default name.
func (k *Keyring) InitFromSeed(ctx context.Context, mnemonic string, paths []string) ([]Account, error) {
	seed, err := NewSeedSource(mnemonic, paths)
	if err != nil {
		return nil, errors.Wrap(ErrInitialization, err.Error())
	}

	hardware, err := NewHardwareSource(k.devices, nil)
	if err != nil {
		return nil, errors.Wrap(ErrInitialization, err.Error())
	}

	k.seed = seed
	k.imported = NewImportSource()
	k.hardware = hardware
	k.deleted = nil
	k.active = ""

	publicKeys := seed.PublicKeys()
	if len(publicKeys) > 0 {
		k.active = publicKeys[0]
	}

	accounts := make([]Account, 0, len(publicKeys))
	for i, publicKey := range publicKeys {
		account := Account{
			PublicKey: publicKey,
			Name:      fmt.Sprintf("derived account %d", i+1),
		}

		if err := k.names.SetName(ctx, account.PublicKey, account.Name); err != nil {
			return nil, errors.Wrap(err, "failed to persist account name")
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// InitFromHardware builds the hardware source from enumerated device
// descriptors alongside an empty imported source. Any prior state is
// discarded. The first descriptor's key becomes the active wallet and every
// key gets a persisted default name plus a cold-storage flag.
func (k *Keyring) InitFromHardware(ctx context.Context, descriptors []WalletDescriptor) ([]Account, error) {
	if len(descriptors) == 0 {
		return nil, errors.Wrap(ErrInitialization, "at least one wallet descriptor is required")
	}

	hardware, err := NewHardwareSource(k.devices, descriptors)
	if err != nil {
		return nil, errors.Wrap(ErrInitialization, err.Error())
	}

	k.seed = nil
	k.imported = NewImportSource()
	k.hardware = hardware
	k.deleted = nil
	k.active = descriptors[0].PublicKey

	accounts := make([]Account, 0, len(descriptors))
	for i, descriptor := range descriptors {
		account := Account{
			PublicKey: descriptor.PublicKey,
			Name:      fmt.Sprintf("hardware account %d", i+1),
		}

		if err := k.names.SetName(ctx, account.PublicKey, account.Name); err != nil {
			return nil, errors.Wrap(err, "failed to persist account name")
		}

		if err := k.names.SetColdFlag(ctx, account.PublicKey, true); err != nil {
			return nil, errors.Wrap(err, "failed to persist cold-storage flag")
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// DeriveNextKey derives the key at the next sequential derivation path of the
// seed source and persists its default name.
func (k *Keyring) DeriveNextKey(ctx context.Context) (DerivedAccount, error) {
	if !k.Unlocked() {
		return DerivedAccount{}, ErrLocked
	}

	if k.seed == nil {
		return DerivedAccount{}, ErrNoSeedSource
	}

	publicKey, path, err := k.seed.DeriveNext()
	if err != nil {
		return DerivedAccount{}, errors.Wrap(err, "failed to derive next key")
	}

	account := DerivedAccount{
		Account: Account{
			PublicKey: publicKey,
			Name:      fmt.Sprintf("derived account %d", k.seed.Len()),
		},
		Path: path,
	}

	if err := k.names.SetName(ctx, account.PublicKey, account.Name); err != nil {
		return DerivedAccount{}, errors.Wrap(err, "failed to persist account name")
	}

	return account, nil
}

// AddDerivationPath derives the key at an arbitrary, non-sequential derivation
// path and persists its default name.
func (k *Keyring) AddDerivationPath(ctx context.Context, path string) (DerivedAccount, error) {
	if !k.Unlocked() {
		return DerivedAccount{}, ErrLocked
	}

	if k.seed == nil {
		return DerivedAccount{}, ErrNoSeedSource
	}

	publicKey, err := k.seed.AddPath(path)
	if err != nil {
		return DerivedAccount{}, errors.Wrap(err, "failed to add derivation path")
	}

	account := DerivedAccount{
		Account: Account{
			PublicKey: publicKey,
			Name:      fmt.Sprintf("derived account %d", k.seed.Len()),
		},
		Path: path,
	}

	if err := k.names.SetName(ctx, account.PublicKey, account.Name); err != nil {
		return DerivedAccount{}, errors.Wrap(err, "failed to persist account name")
	}

	return account, nil
}

// ImportSecretKey adds a keypair from raw secret material. An empty name is
// replaced with a generated default; the chosen name is persisted either way.
func (k *Keyring) ImportSecretKey(ctx context.Context, secret string, name string) (Account, error) {
	if !k.Unlocked() {
		return Account{}, ErrLocked
	}

	publicKey, _, err := decodeSecretKey(secret)
	if err != nil {
		return Account{}, err
	}

	if k.HasPublicKey(publicKey) {
		return Account{}, errors.Errorf("public key %s is already owned by a key source", publicKey)
	}

	if _, err := k.imported.ImportSecretKey(secret); err != nil {
		return Account{}, err
	}

	if name == "" {
		name = fmt.Sprintf("imported account %d", k.imported.Len())
	}

	if err := k.names.SetName(ctx, publicKey, name); err != nil {
		return Account{}, errors.Wrap(err, "failed to persist account name")
	}

	return Account{PublicKey: publicKey, Name: name}, nil
}

// Source returns the key source owning publicKey, scanning seed-derived,
// imported and hardware sources in that fixed order. The ordering is the
// observable tie-break should a cross-source duplicate ever exist.
func (k *Keyring) Source(publicKey string) (Source, error) {
	if !k.Unlocked() {
		return nil, ErrLocked
	}

	sources := []Source{k.imported, k.hardware}
	if k.seed != nil {
		sources = append([]Source{k.seed}, sources...)
	}

	for _, source := range sources {
		for _, key := range source.PublicKeys() {
			if key == publicKey {
				return source, nil
			}
		}
	}

	return nil, errors.WithMessage(ErrKeyNotFound, publicKey)
}

// HasPublicKey reports whether any key source owns publicKey.
func (k *Keyring) HasPublicKey(publicKey string) bool {
	_, err := k.Source(publicKey)

	return err == nil
}

// PublicKeys returns every live public key, seed-derived first, then imported,
// then hardware.
func (k *Keyring) PublicKeys() []string {
	if !k.Unlocked() {
		return nil
	}

	var keys []string
	if k.seed != nil {
		keys = append(keys, k.seed.PublicKeys()...)
	}

	keys = append(keys, k.imported.PublicKeys()...)
	keys = append(keys, k.hardware.PublicKeys()...)

	return keys
}

// ExportSecretKey returns the raw secret behind publicKey. Only the
// seed-derived and imported sources are consulted; hardware keys hold no
// exportable secret.
func (k *Keyring) ExportSecretKey(publicKey string) (string, error) {
	if !k.Unlocked() {
		return "", ErrLocked
	}

	if k.seed != nil {
		if secret, err := k.seed.ExportSecretKey(publicKey); err == nil {
			return secret, nil
		}
	}

	if secret, err := k.imported.ExportSecretKey(publicKey); err == nil {
		return secret, nil
	}

	return "", errors.WithMessage(ErrKeyNotFound, publicKey)
}

// SignTransaction signs a base58-encoded transaction message with the key
// behind publicKey. The signature encoding is whatever the owning source
// produces.
func (k *Keyring) SignTransaction(ctx context.Context, publicKey string, message string) (string, error) {
	return k.sign(ctx, publicKey, message)
}

// SignMessage signs a base58-encoded message with the key behind publicKey.
func (k *Keyring) SignMessage(ctx context.Context, publicKey string, message string) (string, error) {
	return k.sign(ctx, publicKey, message)
}

func (k *Keyring) sign(ctx context.Context, publicKey string, message string) (string, error) {
	raw, err := base58.Decode(message)
	if err != nil {
		return "", errors.Wrap(ErrMalformedInput, "message is not valid base58")
	}

	source, err := k.Source(publicKey)
	if err != nil {
		return "", err
	}

	return source.Sign(ctx, publicKey, raw)
}

// ActiveWallet returns the active public key, empty if none is set.
func (k *Keyring) ActiveWallet() string {
	return k.active
}

// SetActiveWallet unconditionally overwrites the active public key. No
// membership check is performed; validating the key against the live set is
// the caller's responsibility.
func (k *Keyring) SetActiveWallet(publicKey string) {
	k.active = publicKey
}

// DeleteKey removes publicKey from its owning source. The active wallet and
// the deleted-key set are not touched; callers managing those invariants do so
// through SetActiveWallet and MarkDeleted.
func (k *Keyring) DeleteKey(ctx context.Context, publicKey string) error {
	source, err := k.Source(publicKey)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Str("public_key", publicKey).Msg("Cannot delete unknown public key")
		return err
	}

	return source.DeletePublicKey(publicKey)
}

// MarkDeleted records publicKey in the deleted-key set. The set is append-only
// and deduplicated.
func (k *Keyring) MarkDeleted(publicKey string) {
	for _, key := range k.deleted {
		if key == publicKey {
			return
		}
	}

	k.deleted = append(k.deleted, publicKey)
}

// DeletedKeys returns the recorded deleted public keys in insertion order.
func (k *Keyring) DeletedKeys() []string {
	keys := make([]string, len(k.deleted))
	copy(keys, k.deleted)

	return keys
}

// Mnemonic returns the seed phrase of the seed-derived source.
func (k *Keyring) Mnemonic() (string, error) {
	if !k.Unlocked() {
		return "", ErrLocked
	}

	if k.seed == nil {
		return "", ErrNoSeedSource
	}

	return k.seed.Mnemonic(), nil
}

// Seed returns the seed-derived source, nil when the keyring was initialized
// from hardware descriptors or is locked.
func (k *Keyring) Seed() *SeedSource {
	return k.seed
}

// Imported returns the imported key source, nil while locked.
func (k *Keyring) Imported() *ImportSource {
	return k.imported
}

// Hardware returns the hardware key source, nil while locked.
func (k *Keyring) Hardware() *HardwareSource {
	return k.hardware
}
