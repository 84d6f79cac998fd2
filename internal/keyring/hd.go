package keyring

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// BIP44CoinType is the SLIP-0044 coin type of the chain family served by
	// this keyring.
	BIP44CoinType uint32 = 501

	// hardenedOffset marks a derivation index as hardened. SLIP-0010 ed25519
	// derivation supports hardened indices only.
	hardenedOffset uint32 = 0x80000000

	// masterKeySalt is the SLIP-0010 HMAC key for the ed25519 curve.
	masterKeySalt = "ed25519 seed"
)

// DefaultDerivationPath returns the sequential account path m/44'/501'/{account}'/0'.
func DefaultDerivationPath(account int) string {
	return fmt.Sprintf("m/44'/%d'/%d'/0'", BIP44CoinType, account)
}

// parseDerivationPath parses a hardened BIP32 path string such as
// "m/44'/501'/0'/0'" into its raw indices (without the hardened offset).
// Every component must be hardened, ed25519 derivation has no public
// parent-to-child scheme for non-hardened indices.
func parseDerivationPath(path string) ([]uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(path, "m/"), "M/")
	if trimmed == "" || trimmed == path {
		return nil, errors.Wrapf(ErrMalformedInput, "derivation path %q must start with \"m/\"", path)
	}

	parts := strings.Split(trimmed, "/")
	indices := make([]uint32, 0, len(parts))

	for _, part := range parts {
		component, hardened := strings.CutSuffix(part, "'")
		if !hardened {
			return nil, errors.Wrapf(ErrMalformedInput, "derivation path component %q must be hardened", part)
		}

		index, err := strconv.ParseUint(component, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "invalid derivation path component %q", part)
		}

		if uint32(index) >= hardenedOffset {
			return nil, errors.Wrapf(ErrMalformedInput, "derivation path index %d out of range", index)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}

// mnemonicToSeed converts a BIP39 mnemonic into a 64 byte binary seed.
// BIP39: seed = PBKDF2(mnemonic, "mnemonic", 2048, 64, SHA512).
func mnemonicToSeed(mnemonic string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid BIP39 mnemonic")
	}

	const (
		pbkdf2Iterations = 2048
		pbkdf2KeyLength  = 64
	)

	return pbkdf2.Key(
		[]byte(mnemonic),
		[]byte("mnemonic"),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	), nil
}

// deriveKey derives an ed25519 private key from a binary seed and a hardened
// derivation path, per SLIP-0010.
func deriveKey(seed []byte, path string) (ed25519.PrivateKey, error) {
	indices, err := parseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha512.New, []byte(masterKeySalt))
	mac.Write(seed)
	digest := mac.Sum(nil)

	key := digest[:32]
	chainCode := digest[32:]

	for _, index := range indices {
		var serialized [4]byte
		binary.BigEndian.PutUint32(serialized[:], index|hardenedOffset)

		mac := hmac.New(sha512.New, chainCode)
		mac.Write([]byte{0x00})
		mac.Write(key)
		mac.Write(serialized[:])
		digest := mac.Sum(nil)

		key = digest[:32]
		chainCode = digest[32:]
	}

	return ed25519.NewKeyFromSeed(key), nil
}
