package keys

import (
	"errors"
)

var (
	// ErrInvalidSeedLength is returned when a non-positive seed length is requested.
	ErrInvalidSeedLength = errors.New("invalid seed length")
	// ErrInvalidMasterSize is returned when a master seed can't be used for child derivation.
	ErrInvalidMasterSize = errors.New("master seed must be 1 to 64 bytes")
	// ErrInvalidMnemonic is returned when a mnemonic fails the BIP-39 checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// EntropyError is returned when the entropy source fails.
type EntropyError struct {
	parent error
}

func errEntropy(parent error) error {
	return EntropyError{parent: parent}
}

// Unwrap returns the error reported by the entropy source.
func (e EntropyError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the entropy error.
func (e EntropyError) Error() string {
	if e.parent == nil {
		return "failed to read entropy"
	}

	return "failed to read entropy: " + e.parent.Error()
}
