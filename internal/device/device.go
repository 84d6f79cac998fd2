// Package device abstracts external hardware signing devices. The wire
// protocol to a physical device is not part of this service; a Transport
// implementation owns it. The Registry tracks connected transports by device
// ID and delegates signing requests from the keyring to them.
package device

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github/chapool/go-keyring/internal/keyring"
)

// Transport is one connected hardware device. Implementations talk the
// device's own protocol; private key material never crosses this interface.
type Transport interface {
	// Enumerate lists the keys the device exposes. The Device field of the
	// returned descriptors is stamped by the Registry.
	Enumerate(ctx context.Context) ([]keyring.WalletDescriptor, error)

	// Sign signs raw message bytes with the key at the given derivation path
	// and returns the signature in the device's string encoding.
	Sign(ctx context.Context, path string, message []byte) (string, error)
}

// Registry tracks connected device transports by device ID. It implements
// keyring.DeviceSigner.
type Registry struct {
	mu         sync.RWMutex
	transports map[string]Transport
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transports: make(map[string]Transport),
	}
}

// Register adds a connected transport and returns its assigned device ID.
func (r *Registry) Register(transport Transport) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.transports[id] = transport

	return id
}

// Deregister removes a disconnected transport.
func (r *Registry) Deregister(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.transports, deviceID)
}

// Enumerate lists the keys of a registered device, with the device ID stamped
// into every descriptor.
func (r *Registry) Enumerate(ctx context.Context, deviceID string) ([]keyring.WalletDescriptor, error) {
	transport, err := r.transport(deviceID)
	if err != nil {
		return nil, err
	}

	descriptors, err := transport.Enumerate(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "device %s enumeration failed", deviceID)
	}

	for i := range descriptors {
		descriptors[i].Device = deviceID
	}

	return descriptors, nil
}

// Sign delegates a signing request to the transport behind deviceID.
func (r *Registry) Sign(ctx context.Context, deviceID string, path string, message []byte) (string, error) {
	transport, err := r.transport(deviceID)
	if err != nil {
		return "", err
	}

	return transport.Sign(ctx, path, message)
}

func (r *Registry) transport(deviceID string) (Transport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transport, ok := r.transports[deviceID]
	if !ok {
		return nil, errors.Errorf("device %s is not connected", deviceID)
	}

	return transport, nil
}
