package keyring

import (
	"context"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// HardwareSource owns public keys and derivation metadata for keys whose
// private material lives on an external device. Signing is delegated to the
// device through a DeviceSigner.
type HardwareSource struct {
	devices DeviceSigner
	order   []string
	entries map[string]WalletDescriptor
}

// NewHardwareSource builds a source from enumerated device descriptors,
// order-preserving.
func NewHardwareSource(devices DeviceSigner, descriptors []WalletDescriptor) (*HardwareSource, error) {
	s := &HardwareSource{
		devices: devices,
		entries: make(map[string]WalletDescriptor, len(descriptors)),
	}

	for _, descriptor := range descriptors {
		if err := s.add(descriptor); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *HardwareSource) add(descriptor WalletDescriptor) error {
	raw, err := base58.Decode(descriptor.PublicKey)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return errors.Errorf("descriptor public key %q is not a valid ed25519 key", descriptor.PublicKey)
	}

	if descriptor.Device == "" {
		return errors.Errorf("descriptor for %s has no device identifier", descriptor.PublicKey)
	}

	if _, ok := s.entries[descriptor.PublicKey]; ok {
		return errors.Errorf("duplicate descriptor public key %s", descriptor.PublicKey)
	}

	s.order = append(s.order, descriptor.PublicKey)
	s.entries[descriptor.PublicKey] = descriptor

	return nil
}

// PublicKeys returns the hardware public keys in descriptor order.
func (s *HardwareSource) PublicKeys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)

	return keys
}

// Descriptors returns the wallet descriptors in descriptor order.
func (s *HardwareSource) Descriptors() []WalletDescriptor {
	descriptors := make([]WalletDescriptor, 0, len(s.order))
	for _, publicKey := range s.order {
		descriptors = append(descriptors, s.entries[publicKey])
	}

	return descriptors
}

// Descriptor returns the descriptor behind publicKey.
func (s *HardwareSource) Descriptor(publicKey string) (WalletDescriptor, bool) {
	descriptor, ok := s.entries[publicKey]

	return descriptor, ok
}

// Len returns the number of hardware keys.
func (s *HardwareSource) Len() int {
	return len(s.order)
}

// Sign delegates signing to the device that owns publicKey.
func (s *HardwareSource) Sign(ctx context.Context, publicKey string, message []byte) (string, error) {
	descriptor, ok := s.entries[publicKey]
	if !ok {
		return "", ErrKeyNotFound
	}

	if s.devices == nil {
		return "", errors.New("no device signer configured for hardware keys")
	}

	signature, err := s.devices.Sign(ctx, descriptor.Device, descriptor.Path, message)
	if err != nil {
		return "", errors.Wrapf(err, "device %s failed to sign", descriptor.Device)
	}

	return signature, nil
}

// DeletePublicKey removes the descriptor from the set.
func (s *HardwareSource) DeletePublicKey(publicKey string) error {
	if _, ok := s.entries[publicKey]; !ok {
		return ErrKeyNotFound
	}

	delete(s.entries, publicKey)

	for i, key := range s.order {
		if key == publicKey {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
