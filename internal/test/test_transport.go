package test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/keyring"
)

// MockTransport emulates a hardware signing device holding one in-memory
// keypair per derivation path.
type MockTransport struct {
	keys  map[string]ed25519.PrivateKey
	paths []string
}

// NewMockTransport generates a fresh keypair for every given derivation path.
func NewMockTransport(t *testing.T, paths ...string) *MockTransport {
	t.Helper()

	keys := make(map[string]ed25519.PrivateKey, len(paths))
	for _, path := range paths {
		_, key, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		keys[path] = key
	}

	return &MockTransport{keys: keys, paths: paths}
}

// Enumerate lists the held keys in path order. The Device field is left for
// the registry to stamp.
func (m *MockTransport) Enumerate(_ context.Context) ([]keyring.WalletDescriptor, error) {
	descriptors := make([]keyring.WalletDescriptor, 0, len(m.paths))
	for _, path := range m.paths {
		descriptors = append(descriptors, keyring.WalletDescriptor{
			PublicKey: base58.Encode(m.keys[path].Public().(ed25519.PublicKey)),
			Path:      path,
		})
	}

	return descriptors, nil
}

// Sign signs with the key at path, mirroring a device's base58 signature
// encoding.
func (m *MockTransport) Sign(_ context.Context, path string, message []byte) (string, error) {
	key, ok := m.keys[path]
	if !ok {
		return "", errors.Errorf("no key at path %s", path)
	}

	return base58.Encode(ed25519.Sign(key, message)), nil
}
