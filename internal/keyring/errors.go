package keyring

import "github.com/pkg/errors"

var (
	// ErrLocked is returned when an operation is attempted before the keyring
	// has been initialized from a seed phrase or from hardware descriptors.
	ErrLocked = errors.New("keyring is locked")

	// ErrKeyNotFound is returned when no key source owns the requested public key.
	ErrKeyNotFound = errors.New("public key not found in any key source")

	// ErrInitialization is returned when a seed phrase, derivation path or
	// descriptor list handed to an initializer is malformed.
	ErrInitialization = errors.New("keyring initialization failed")

	// ErrNoSeedSource is returned when a derivation operation is attempted on a
	// keyring that was initialized from hardware descriptors.
	ErrNoSeedSource = errors.New("keyring has no seed-derived key source")

	// ErrMalformedInput is returned when caller-supplied material (a secret
	// key, a message, a derivation path) fails to decode or parse.
	ErrMalformedInput = errors.New("malformed input")
)
