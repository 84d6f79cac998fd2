package keyring

import (
	"github.com/pkg/errors"
)

// State is the persisted form of a keyring. The imported and hardware
// sub-records are mandatory; the seed sub-record is absent for a keyring that
// was initialized from hardware descriptors.
type State struct {
	Seed         *SeedState     `json:"seed,omitempty"`
	Imported     *ImportedState `json:"imported"`
	Hardware     *HardwareState `json:"hardware"`
	ActiveWallet string         `json:"active_wallet,omitempty"`
	DeletedKeys  []string       `json:"deleted_keys,omitempty"`
}

// SeedState persists the seed-derived source. Keypairs are re-derived from the
// mnemonic and paths on restore.
type SeedState struct {
	Mnemonic string   `json:"mnemonic"`
	Paths    []string `json:"paths"`
}

// ImportedState persists the imported source as a public key to raw secret
// mapping.
type ImportedState struct {
	SecretKeys map[string]string `json:"secret_keys"`
}

// HardwareState persists the hardware source's wallet descriptors.
type HardwareState struct {
	Descriptors []WalletDescriptor `json:"descriptors"`
}

// Serialize produces the persisted form of the keyring. A keyring that was
// never initialized cannot be serialized.
func (k *Keyring) Serialize() (*State, error) {
	if !k.Unlocked() {
		return nil, ErrLocked
	}

	state := &State{
		Imported:     &ImportedState{SecretKeys: make(map[string]string, k.imported.Len())},
		Hardware:     &HardwareState{Descriptors: k.hardware.Descriptors()},
		ActiveWallet: k.active,
		DeletedKeys:  k.DeletedKeys(),
	}

	if k.seed != nil {
		state.Seed = &SeedState{
			Mnemonic: k.seed.Mnemonic(),
			Paths:    k.seed.Paths(),
		}
	}

	for _, publicKey := range k.imported.PublicKeys() {
		secret, err := k.imported.ExportSecretKey(publicKey)
		if err != nil {
			return nil, err
		}

		state.Imported.SecretKeys[publicKey] = secret
	}

	return state, nil
}

// Restore reconstructs a keyring from its persisted form. The input is
// trusted: no uniqueness validation is performed across the restored sources.
func Restore(names NameStore, devices DeviceSigner, state *State) (*Keyring, error) {
	if state == nil {
		return nil, errors.New("persisted keyring state is nil")
	}

	if state.Imported == nil || state.Hardware == nil {
		return nil, errors.New("persisted keyring state is missing a mandatory key-source record")
	}

	k := New(names, devices)

	if state.Seed != nil {
		seed, err := NewSeedSource(state.Seed.Mnemonic, state.Seed.Paths)
		if err != nil {
			return nil, errors.Wrap(err, "failed to restore seed-derived source")
		}

		k.seed = seed
	}

	imported := NewImportSource()
	for _, secret := range state.Imported.SecretKeys {
		if _, err := imported.ImportSecretKey(secret); err != nil {
			return nil, errors.Wrap(err, "failed to restore imported source")
		}
	}

	hardware, err := NewHardwareSource(devices, state.Hardware.Descriptors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore hardware source")
	}

	k.imported = imported
	k.hardware = hardware
	k.active = state.ActiveWallet
	k.deleted = append([]string(nil), state.DeletedKeys...)

	return k, nil
}
