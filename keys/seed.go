// Package keys derives ed25519 keypairs from seeds of arbitrary length
// and derives child seeds from a master seed and a label.
//
// Derivation is a two-stage pipeline: the seed is stretched into a fixed
// 32-byte value with PBKDF2, which is then expanded into an ed25519 keypair.
// The same seed always yields the same keypair.
package keys

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Seed is the entropy a keypair is derived from. Callers own its storage.
type Seed []byte

// DefaultSeedLength is the seed length used by the command line tools.
const DefaultSeedLength = 64

// EntropySource supplies random bytes for new seeds.
// Read must fill the whole buffer or return an error.
type EntropySource interface {
	io.Reader
}

// DefaultEntropy is the process-wide cryptographically secure source.
var DefaultEntropy EntropySource = rand.Reader //nolint:gochecknoglobals

// GenerateSeed reads length bytes from src.
// A failing entropy source is fatal for the caller; nothing is retried here.
func GenerateSeed(src EntropySource, length int) (Seed, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeedLength, length)
	}

	seed := make(Seed, length)

	if _, err := io.ReadFull(src, seed); err != nil {
		return nil, errEntropy(err)
	}

	return seed, nil
}

// GenerateKeyPairAndSeed creates a random seed of the given length and the keypair derived from it.
func GenerateKeyPairAndSeed(src EntropySource, length int) (KeyPair, Seed, error) {
	seed, err := GenerateSeed(src, length)
	if err != nil {
		return KeyPair{}, nil, err
	}

	return DeriveKeyPair(seed), seed, nil
}
