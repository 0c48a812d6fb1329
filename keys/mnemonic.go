package keys

import (
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const mnemonicEntropyBytes = 32

// NewMnemonicSeed draws 256 bits of entropy from src and returns the BIP-39
// mnemonic for it together with the 64-byte seed it expands to.
// The mnemonic is the backup form; the seed is what DeriveKeyPair consumes.
func NewMnemonicSeed(src EntropySource, passphrase string) (string, Seed, error) {
	entropy := make([]byte, mnemonicEntropyBytes)

	if _, err := io.ReadFull(src, entropy); err != nil {
		return "", nil, errEntropy(err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode mnemonic: %w", err)
	}

	return mnemonic, bip39.NewSeed(mnemonic, passphrase), nil
}

// SeedFromMnemonic validates mnemonic and expands it into a 64-byte seed.
func SeedFromMnemonic(mnemonic, passphrase string) (Seed, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	return bip39.NewSeed(mnemonic, passphrase), nil
}
