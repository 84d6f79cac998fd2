package keys

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github/chapool/go-keyring/internal/device"
	"github/chapool/go-keyring/internal/keyring"
	"github/chapool/go-keyring/internal/metastore"
	"github/chapool/go-keyring/internal/util"
)

type service struct {
	mu      sync.Mutex
	store   *metastore.Store
	devices *device.Registry
	kr      *keyring.Keyring
}

// NewService restores the keyring from its persisted snapshot if one exists,
// otherwise starts locked.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(ctx context.Context, store *metastore.Store, devices *device.Registry) (Service, error) {
	s := &service{
		store:   store,
		devices: devices,
	}

	data, err := store.LoadKeyringState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load keyring state")
	}

	if data == nil {
		s.kr = keyring.New(store, devices)
		return s, nil
	}

	var state keyring.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "failed to decode keyring state")
	}

	kr, err := keyring.Restore(store, devices, &state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore keyring")
	}

	util.LogFromContext(ctx).Info().
		Int("public_keys", len(kr.PublicKeys())).
		Msg("Keyring restored from persisted state")

	s.kr = kr

	return s, nil
}

// persist snapshots the keyring into the metadata store. Callers hold the
// lock.
func (s *service) persist(ctx context.Context) error {
	state, err := s.kr.Serialize()
	if err != nil {
		return errors.Wrap(err, "failed to serialize keyring")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode keyring state")
	}

	return s.store.SaveKeyringState(ctx, data)
}

func (s *service) InitFromSeed(ctx context.Context, mnemonic string, paths []string) ([]keyring.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := util.LogFromContext(ctx)

	if s.kr.Unlocked() {
		log.Warn().Msg("Re-initializing an unlocked keyring from seed, discarding existing keys")
	}

	accounts, err := s.kr.InitFromSeed(ctx, mnemonic, paths)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.Info().Int("accounts", len(accounts)).Msg("Keyring initialized from seed phrase")

	return accounts, nil
}

func (s *service) InitFromHardware(ctx context.Context, descriptors []keyring.WalletDescriptor) ([]keyring.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := util.LogFromContext(ctx)

	if s.kr.Unlocked() {
		log.Warn().Msg("Re-initializing an unlocked keyring from hardware, discarding existing keys")
	}

	accounts, err := s.kr.InitFromHardware(ctx, descriptors)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	log.Info().Int("accounts", len(accounts)).Msg("Keyring initialized from hardware descriptors")

	return accounts, nil
}

func (s *service) DeriveNextKey(ctx context.Context) (keyring.DerivedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.kr.DeriveNextKey(ctx)
	if err != nil {
		return keyring.DerivedAccount{}, err
	}

	if err := s.persist(ctx); err != nil {
		return keyring.DerivedAccount{}, err
	}

	util.LogFromContext(ctx).Info().
		Str("public_key", account.PublicKey).
		Str("path", account.Path).
		Msg("Derived next key")

	return account, nil
}

func (s *service) AddDerivationPath(ctx context.Context, path string) (keyring.DerivedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.kr.AddDerivationPath(ctx, path)
	if err != nil {
		return keyring.DerivedAccount{}, err
	}

	if err := s.persist(ctx); err != nil {
		return keyring.DerivedAccount{}, err
	}

	return account, nil
}

func (s *service) ImportSecretKey(ctx context.Context, secret string, name string) (keyring.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.kr.ImportSecretKey(ctx, secret, name)
	if err != nil {
		return keyring.Account{}, err
	}

	if err := s.persist(ctx); err != nil {
		return keyring.Account{}, err
	}

	util.LogFromContext(ctx).Info().
		Str("public_key", account.PublicKey).
		Msg("Imported secret key")

	return account, nil
}

func (s *service) ListAccounts(ctx context.Context) ([]AccountInfo, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kr.Unlocked() {
		return nil, nil, keyring.ErrLocked
	}

	active := s.kr.ActiveWallet()
	var accounts []AccountInfo

	if seed := s.kr.Seed(); seed != nil {
		publicKeys := seed.PublicKeys()
		paths := seed.Paths()

		for i, publicKey := range publicKeys {
			accounts = append(accounts, AccountInfo{
				PublicKey: publicKey,
				Source:    SourceSeed,
				Path:      paths[i],
				Active:    publicKey == active,
			})
		}
	}

	for _, publicKey := range s.kr.Imported().PublicKeys() {
		accounts = append(accounts, AccountInfo{
			PublicKey: publicKey,
			Source:    SourceImported,
			Active:    publicKey == active,
		})
	}

	for _, descriptor := range s.kr.Hardware().Descriptors() {
		accounts = append(accounts, AccountInfo{
			PublicKey: descriptor.PublicKey,
			Source:    SourceHardware,
			Path:      descriptor.Path,
			Active:    descriptor.PublicKey == active,
		})
	}

	for i := range accounts {
		name, err := s.store.Name(ctx, accounts[i].PublicKey)
		if err != nil {
			return nil, nil, err
		}

		cold, err := s.store.IsCold(ctx, accounts[i].PublicKey)
		if err != nil {
			return nil, nil, err
		}

		accounts[i].Name = name
		accounts[i].Cold = cold
	}

	return accounts, s.kr.DeletedKeys(), nil
}

func (s *service) HasPublicKey(_ context.Context, publicKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kr.HasPublicKey(publicKey)
}

func (s *service) ActiveWallet(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kr.ActiveWallet()
}

func (s *service) SetActiveWallet(ctx context.Context, publicKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kr.Unlocked() {
		return keyring.ErrLocked
	}

	s.kr.SetActiveWallet(publicKey)

	return s.persist(ctx)
}

func (s *service) ExportSecretKey(_ context.Context, publicKey string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kr.ExportSecretKey(publicKey)
}

func (s *service) SignTransaction(ctx context.Context, publicKey string, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kr.SignTransaction(ctx, publicKey, message)
}

func (s *service) SignMessage(ctx context.Context, publicKey string, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kr.SignMessage(ctx, publicKey, message)
}

func (s *service) DeleteKey(ctx context.Context, publicKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kr.DeleteKey(ctx, publicKey); err != nil {
		return err
	}

	// The facade leaves the active wallet and deleted set untouched; recording
	// the deletion is this caller's job.
	s.kr.MarkDeleted(publicKey)

	if err := s.persist(ctx); err != nil {
		return err
	}

	util.LogFromContext(ctx).Info().
		Str("public_key", publicKey).
		Msg("Deleted key")

	return nil
}
