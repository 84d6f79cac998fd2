// Package metastore is the durable name/metadata store of the keyring
// service: display names and cold-storage flags keyed by public key, plus the
// serialized keyring snapshot. Backed by a badger key-value database.
package metastore

import (
	"context"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

const (
	namePrefix = "name:"
	coldPrefix = "cold:"
	stateKey   = "keyring/state"
)

// Store wraps the badger database. All methods are safe for concurrent use.
type Store struct {
	db *badger.DB
}

// New opens the store at path. An in-memory store (path ignored) is used for
// tests.
func New(path string, inMemory bool) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open metadata store")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetName persists the display name for a public key. The write is awaited;
// the caller's operation fails if it fails.
func (s *Store) SetName(ctx context.Context, publicKey string, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(namePrefix+publicKey), []byte(name))
	})

	return errors.Wrapf(err, "failed to persist name for %s", publicKey)
}

// Name returns the persisted display name for a public key, empty if none was
// ever written.
func (s *Store) Name(ctx context.Context, publicKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var name string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(namePrefix + publicKey))
		if err != nil {
			return err
		}

		return item.Value(func(value []byte) error {
			name = string(value)
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}

	return name, errors.Wrapf(err, "failed to read name for %s", publicKey)
}

// SetColdFlag persists the cold-storage flag for a public key.
func (s *Store) SetColdFlag(ctx context.Context, publicKey string, cold bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value := []byte{0}
	if cold {
		value[0] = 1
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(coldPrefix+publicKey), value)
	})

	return errors.Wrapf(err, "failed to persist cold-storage flag for %s", publicKey)
}

// IsCold returns the persisted cold-storage flag, false if never written.
func (s *Store) IsCold(ctx context.Context, publicKey string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var cold bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(coldPrefix + publicKey))
		if err != nil {
			return err
		}

		return item.Value(func(value []byte) error {
			cold = len(value) == 1 && value[0] == 1
			return nil
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}

	return cold, errors.Wrapf(err, "failed to read cold-storage flag for %s", publicKey)
}

// SaveKeyringState persists the serialized keyring snapshot.
func (s *Store) SaveKeyringState(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), data)
	})

	return errors.Wrap(err, "failed to persist keyring state")
}

// LoadKeyringState returns the serialized keyring snapshot, nil if none was
// ever saved.
func (s *Store) LoadKeyringState(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)

		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}

	return data, errors.Wrap(err, "failed to read keyring state")
}
