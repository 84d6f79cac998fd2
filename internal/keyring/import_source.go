package keyring

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"sort"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// ImportSource owns individually imported keypairs, keyed by public key.
type ImportSource struct {
	keys map[string]ed25519.PrivateKey
}

// NewImportSource returns an empty imported key set.
func NewImportSource() *ImportSource {
	return &ImportSource{
		keys: make(map[string]ed25519.PrivateKey),
	}
}

// decodeSecretKey decodes a base58 raw secret into a keypair. Both the 32 byte
// seed form and the 64 byte expanded form are accepted.
func decodeSecretKey(secret string) (string, ed25519.PrivateKey, error) {
	raw, err := base58.Decode(secret)
	if err != nil {
		return "", nil, errors.Wrap(ErrMalformedInput, "secret key is not valid base58")
	}

	var key ed25519.PrivateKey

	switch len(raw) {
	case ed25519.SeedSize:
		key = ed25519.NewKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		key = ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !bytes.Equal(key, raw) {
			return "", nil, errors.Wrap(ErrMalformedInput, "secret key public half does not match its seed")
		}
	default:
		return "", nil, errors.Wrapf(ErrMalformedInput, "secret key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}

	return base58.Encode(key.Public().(ed25519.PublicKey)), key, nil
}

// ImportSecretKey adds a keypair from raw secret material and returns its
// public key.
func (s *ImportSource) ImportSecretKey(secret string) (string, error) {
	publicKey, key, err := decodeSecretKey(secret)
	if err != nil {
		return "", err
	}

	s.keys[publicKey] = key

	return publicKey, nil
}

// PublicKeys returns the imported public keys, sorted for stable output.
func (s *ImportSource) PublicKeys() []string {
	keys := make([]string, 0, len(s.keys))
	for publicKey := range s.keys {
		keys = append(keys, publicKey)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of imported keys.
func (s *ImportSource) Len() int {
	return len(s.keys)
}

// Sign signs message with the imported key behind publicKey and returns the
// signature base58-encoded.
func (s *ImportSource) Sign(_ context.Context, publicKey string, message []byte) (string, error) {
	key, ok := s.keys[publicKey]
	if !ok {
		return "", ErrKeyNotFound
	}

	return base58.Encode(ed25519.Sign(key, message)), nil
}

// ExportSecretKey returns the base58-encoded 64 byte secret key.
func (s *ImportSource) ExportSecretKey(publicKey string) (string, error) {
	key, ok := s.keys[publicKey]
	if !ok {
		return "", ErrKeyNotFound
	}

	return base58.Encode(key), nil
}

// DeletePublicKey removes the keypair from the set.
func (s *ImportSource) DeletePublicKey(publicKey string) error {
	if _, ok := s.keys[publicKey]; !ok {
		return ErrKeyNotFound
	}

	delete(s.keys, publicKey)

	return nil
}
