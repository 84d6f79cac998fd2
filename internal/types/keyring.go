package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

// PostInitSeedPayload requests keyring initialization from a seed phrase.
type PostInitSeedPayload struct {
	// BIP39 seed phrase
	Mnemonic *string `json:"mnemonic"`
	// Derivation paths, order-preserving
	DerivationPaths []string `json:"derivation_paths"`
}

// Validate validates this payload.
func (m *PostInitSeedPayload) Validate(_ strfmt.Registry) error {
	if m.Mnemonic == nil || *m.Mnemonic == "" {
		return errors.Required("mnemonic", "body", nil)
	}

	return nil
}

// WalletDescriptorPayload is one enumerated hardware key.
type WalletDescriptorPayload struct {
	PublicKey *string `json:"public_key"`
	Path      *string `json:"path"`
	Device    *string `json:"device"`
}

// Validate validates this payload.
func (m *WalletDescriptorPayload) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil || *m.PublicKey == "" {
		return errors.Required("public_key", "body", nil)
	}

	if m.Path == nil || *m.Path == "" {
		return errors.Required("path", "body", nil)
	}

	if m.Device == nil || *m.Device == "" {
		return errors.Required("device", "body", nil)
	}

	return nil
}

// PostInitHardwarePayload requests keyring initialization from enumerated
// hardware descriptors.
type PostInitHardwarePayload struct {
	Descriptors []*WalletDescriptorPayload `json:"descriptors"`
}

// Validate validates this payload.
func (m *PostInitHardwarePayload) Validate(formats strfmt.Registry) error {
	if len(m.Descriptors) == 0 {
		return errors.Required("descriptors", "body", nil)
	}

	for _, descriptor := range m.Descriptors {
		if descriptor == nil {
			return errors.Required("descriptors", "body", nil)
		}

		if err := descriptor.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// PostAddDerivationPathPayload requests derivation of an arbitrary path.
type PostAddDerivationPathPayload struct {
	Path *string `json:"path"`
}

// Validate validates this payload.
func (m *PostAddDerivationPathPayload) Validate(_ strfmt.Registry) error {
	if m.Path == nil || *m.Path == "" {
		return errors.Required("path", "body", nil)
	}

	return nil
}

// PostImportKeyPayload requests importing a raw secret key.
type PostImportKeyPayload struct {
	// base58-encoded secret key
	SecretKey *string `json:"secret_key"`
	// Optional display name, defaulted when empty
	Name string `json:"name,omitempty"`
}

// Validate validates this payload.
func (m *PostImportKeyPayload) Validate(_ strfmt.Registry) error {
	if m.SecretKey == nil || *m.SecretKey == "" {
		return errors.Required("secret_key", "body", nil)
	}

	return nil
}

// PostExportKeyPayload requests exporting the secret behind a public key.
type PostExportKeyPayload struct {
	PublicKey *string `json:"public_key"`
}

// Validate validates this payload.
func (m *PostExportKeyPayload) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil || *m.PublicKey == "" {
		return errors.Required("public_key", "body", nil)
	}

	return nil
}

// PostSignPayload requests a signature over a base58-encoded message.
type PostSignPayload struct {
	PublicKey *string `json:"public_key"`
	// base58-encoded message bytes
	Message *string `json:"message"`
}

// Validate validates this payload.
func (m *PostSignPayload) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil || *m.PublicKey == "" {
		return errors.Required("public_key", "body", nil)
	}

	if m.Message == nil || *m.Message == "" {
		return errors.Required("message", "body", nil)
	}

	return nil
}

// PutActiveAccountPayload sets the active wallet.
type PutActiveAccountPayload struct {
	PublicKey *string `json:"public_key"`
}

// Validate validates this payload.
func (m *PutActiveAccountPayload) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil || *m.PublicKey == "" {
		return errors.Required("public_key", "body", nil)
	}

	return nil
}

// AccountResponse is one created account.
type AccountResponse struct {
	PublicKey *string `json:"public_key"`
	Name      *string `json:"name"`
}

// Validate validates this response.
func (m *AccountResponse) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil {
		return errors.Required("public_key", "body", nil)
	}

	if m.Name == nil {
		return errors.Required("name", "body", nil)
	}

	return nil
}

// InitKeyringResponse lists the accounts an initializer created.
type InitKeyringResponse struct {
	Accounts     []*AccountResponse `json:"accounts"`
	ActiveWallet string             `json:"active_wallet,omitempty"`
}

// Validate validates this response.
func (m *InitKeyringResponse) Validate(formats strfmt.Registry) error {
	for _, account := range m.Accounts {
		if err := account.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// DeriveKeyResponse is a newly derived account.
type DeriveKeyResponse struct {
	PublicKey *string `json:"public_key"`
	Path      *string `json:"path"`
	Name      *string `json:"name"`
}

// Validate validates this response.
func (m *DeriveKeyResponse) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil {
		return errors.Required("public_key", "body", nil)
	}

	if m.Path == nil {
		return errors.Required("path", "body", nil)
	}

	if m.Name == nil {
		return errors.Required("name", "body", nil)
	}

	return nil
}

// ExportKeyResponse carries an exported raw secret key.
type ExportKeyResponse struct {
	// base58-encoded secret key
	SecretKey *string `json:"secret_key"`
}

// Validate validates this response.
func (m *ExportKeyResponse) Validate(_ strfmt.Registry) error {
	if m.SecretKey == nil {
		return errors.Required("secret_key", "body", nil)
	}

	return nil
}

// SignResponse carries a signature in the owning source's encoding.
type SignResponse struct {
	Signature *string `json:"signature"`
}

// Validate validates this response.
func (m *SignResponse) Validate(_ strfmt.Registry) error {
	if m.Signature == nil {
		return errors.Required("signature", "body", nil)
	}

	return nil
}

// AccountItem is one live account in a listing.
type AccountItem struct {
	PublicKey *string `json:"public_key"`
	Name      string  `json:"name,omitempty"`
	Source    *string `json:"source"`
	Path      string  `json:"path,omitempty"`
	Cold      bool    `json:"cold"`
	Active    bool    `json:"active"`
}

// Validate validates this item.
func (m *AccountItem) Validate(_ strfmt.Registry) error {
	if m.PublicKey == nil {
		return errors.Required("public_key", "body", nil)
	}

	if m.Source == nil {
		return errors.Required("source", "body", nil)
	}

	return nil
}

// GetAccountsResponse lists every live account across all key sources.
type GetAccountsResponse struct {
	Accounts    []*AccountItem `json:"accounts"`
	DeletedKeys []string       `json:"deleted_keys,omitempty"`
}

// Validate validates this response.
func (m *GetAccountsResponse) Validate(formats strfmt.Registry) error {
	for _, account := range m.Accounts {
		if err := account.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// GetActiveAccountResponse carries the active wallet, empty when none is set.
type GetActiveAccountResponse struct {
	PublicKey string `json:"public_key,omitempty"`
}

// Validate validates this response.
func (m *GetActiveAccountResponse) Validate(_ strfmt.Registry) error {
	return nil
}
