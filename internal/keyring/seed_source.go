package keyring

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

type seedEntry struct {
	path      string
	publicKey string
	key       ed25519.PrivateKey
}

// SeedSource owns a seed phrase and the ordered sequence of keys derived from
// it. The sequence grows append-only; keys are re-derived from the mnemonic
// when a persisted source is restored.
type SeedSource struct {
	mnemonic string
	seed     []byte
	entries  []seedEntry
}

// NewSeedSource derives one key per derivation path, order-preserving.
func NewSeedSource(mnemonic string, paths []string) (*SeedSource, error) {
	seed, err := mnemonicToSeed(mnemonic)
	if err != nil {
		return nil, err
	}

	s := &SeedSource{
		mnemonic: mnemonic,
		seed:     seed,
	}

	for _, path := range paths {
		if _, err := s.AddPath(path); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Mnemonic returns the seed phrase the source derives from.
func (s *SeedSource) Mnemonic() string {
	return s.mnemonic
}

// Len returns the number of derived keys.
func (s *SeedSource) Len() int {
	return len(s.entries)
}

// NextDerivationPath returns the path DeriveNext would use: the lowest
// sequential account path not yet in the sequence. Paths added out of order
// (via AddPath or a non-zero initial path set) are skipped over instead of
// wedging sequential derivation.
func (s *SeedSource) NextDerivationPath() string {
	used := make(map[string]struct{}, len(s.entries))
	for _, entry := range s.entries {
		used[entry.path] = struct{}{}
	}

	for account := 0; ; account++ {
		path := DefaultDerivationPath(account)
		if _, ok := used[path]; !ok {
			return path
		}
	}
}

// DeriveNext derives the key at the next sequential account path.
func (s *SeedSource) DeriveNext() (publicKey string, path string, err error) {
	path = s.NextDerivationPath()

	publicKey, err = s.AddPath(path)
	if err != nil {
		return "", "", err
	}

	return publicKey, path, nil
}

// AddPath derives and appends the key at an arbitrary derivation path.
func (s *SeedSource) AddPath(path string) (string, error) {
	for _, entry := range s.entries {
		if entry.path == path {
			return "", errors.Errorf("derivation path %s is already in use", path)
		}
	}

	key, err := deriveKey(s.seed, path)
	if err != nil {
		return "", err
	}

	publicKey := base58.Encode(key.Public().(ed25519.PublicKey))
	s.entries = append(s.entries, seedEntry{
		path:      path,
		publicKey: publicKey,
		key:       key,
	})

	return publicKey, nil
}

// PublicKeys returns the derived public keys in derivation order.
func (s *SeedSource) PublicKeys() []string {
	keys := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		keys = append(keys, entry.publicKey)
	}

	return keys
}

// Paths returns the derivation paths in derivation order.
func (s *SeedSource) Paths() []string {
	paths := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		paths = append(paths, entry.path)
	}

	return paths
}

// Sign signs message with the key behind publicKey and returns the signature
// base58-encoded.
func (s *SeedSource) Sign(_ context.Context, publicKey string, message []byte) (string, error) {
	entry, ok := s.lookup(publicKey)
	if !ok {
		return "", ErrKeyNotFound
	}

	return base58.Encode(ed25519.Sign(entry.key, message)), nil
}

// ExportSecretKey returns the base58-encoded 64 byte secret key.
func (s *SeedSource) ExportSecretKey(publicKey string) (string, error) {
	entry, ok := s.lookup(publicKey)
	if !ok {
		return "", ErrKeyNotFound
	}

	return base58.Encode(entry.key), nil
}

// DeletePublicKey removes the key from the sequence.
func (s *SeedSource) DeletePublicKey(publicKey string) error {
	for i, entry := range s.entries {
		if entry.publicKey == publicKey {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}

	return ErrKeyNotFound
}

func (s *SeedSource) lookup(publicKey string) (seedEntry, bool) {
	for _, entry := range s.entries {
		if entry.publicKey == publicKey {
			return entry, true
		}
	}

	return seedEntry{}, false
}
