package keyring

import "context"

// Source is the contract shared by the three key sources the keyring routes
// to. A public key belongs to at most one source at any time.
type Source interface {
	// PublicKeys returns the base58-encoded public keys the source owns.
	// The seed-derived source returns them in derivation order.
	PublicKeys() []string

	// Sign signs raw message bytes with the key behind publicKey and returns
	// the signature in the source's own string encoding.
	Sign(ctx context.Context, publicKey string, message []byte) (string, error)

	// DeletePublicKey removes the key from the source. Returns ErrKeyNotFound
	// if the source does not own it.
	DeletePublicKey(publicKey string) error
}

// NameStore is the durable name/metadata mapping keyed by public key. Writes
// are awaited; a failed write fails the keyring operation that issued it.
type NameStore interface {
	SetName(ctx context.Context, publicKey string, name string) error
	SetColdFlag(ctx context.Context, publicKey string, cold bool) error
}

// DeviceSigner delegates signing to an external hardware device. The private
// material of hardware keys never enters this process.
type DeviceSigner interface {
	Sign(ctx context.Context, deviceID string, path string, message []byte) (string, error)
}

// WalletDescriptor identifies one key on a connected hardware device, as
// produced by enumerating the device.
type WalletDescriptor struct {
	PublicKey string `json:"public_key"`
	Path      string `json:"path"`
	Device    string `json:"device"`
}

// Account pairs a public key with its persisted display name.
type Account struct {
	PublicKey string
	Name      string
}

// DerivedAccount is an Account together with the derivation path it came from.
type DerivedAccount struct {
	Account
	Path string
}
