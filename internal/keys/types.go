package keys

import (
	"context"

	"github/chapool/go-keyring/internal/keyring"
)

// Service owns the keyring for one chain and serializes all access to it. The
// keyring itself carries no locking; this service is the single writer.
type Service interface {
	// InitFromSeed (re-)initializes the keyring from a seed phrase. Existing
	// keys are discarded, not merged.
	InitFromSeed(ctx context.Context, mnemonic string, paths []string) ([]keyring.Account, error)

	// InitFromHardware (re-)initializes the keyring from enumerated hardware
	// descriptors. Existing keys are discarded, not merged.
	InitFromHardware(ctx context.Context, descriptors []keyring.WalletDescriptor) ([]keyring.Account, error)

	// DeriveNextKey derives the next sequential seed-derived key.
	DeriveNextKey(ctx context.Context) (keyring.DerivedAccount, error)

	// AddDerivationPath derives a key at an arbitrary derivation path.
	AddDerivationPath(ctx context.Context, path string) (keyring.DerivedAccount, error)

	// ImportSecretKey adds a keypair from raw secret material.
	ImportSecretKey(ctx context.Context, secret string, name string) (keyring.Account, error)

	// ListAccounts returns every live account with its persisted metadata,
	// plus the recorded deleted public keys.
	ListAccounts(ctx context.Context) ([]AccountInfo, []string, error)

	// HasPublicKey reports whether any key source owns publicKey.
	HasPublicKey(ctx context.Context, publicKey string) bool

	// ActiveWallet returns the active public key, empty if none is set.
	ActiveWallet(ctx context.Context) string

	// SetActiveWallet overwrites the active public key without a membership
	// check.
	SetActiveWallet(ctx context.Context, publicKey string) error

	// ExportSecretKey exports the raw secret behind a seed-derived or imported
	// key.
	ExportSecretKey(ctx context.Context, publicKey string) (string, error)

	// SignTransaction signs a base58-encoded transaction message.
	SignTransaction(ctx context.Context, publicKey string, message string) (string, error)

	// SignMessage signs a base58-encoded message.
	SignMessage(ctx context.Context, publicKey string, message string) (string, error)

	// DeleteKey removes a key from its owning source and records it in the
	// deleted set. The active wallet is left untouched.
	DeleteKey(ctx context.Context, publicKey string) error
}

// AccountInfo is one live account with its persisted metadata.
type AccountInfo struct {
	PublicKey string
	Name      string
	Source    string
	Path      string
	Cold      bool
	Active    bool
}

// Key source labels in account listings.
const (
	SourceSeed     = "seed"
	SourceImported = "imported"
	SourceHardware = "hardware"
)
