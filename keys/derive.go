package keys

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"

	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/hasher"
)

const (
	stretchIterations = 1000
	stretchSize       = ed25519.SeedSize
)

// KeyPair is an ed25519 keypair derived from a Seed.
type KeyPair struct {
	PublicKey  crypto.PublicKey
	PrivateKey crypto.PrivateKey
}

// StretchSeed normalizes a seed of any length into the 32-byte input of
// ed25519 key generation: PBKDF2 with HMAC-SHA-256, empty salt, 1000 iterations.
func StretchSeed(seed Seed) [stretchSize]byte {
	var out [stretchSize]byte

	copy(out[:], pbkdf2.Key(seed, []byte{}, stretchIterations, stretchSize, sha256.New))

	return out
}

// ExpandKeyPair expands a 32-byte ed25519 seed into a keypair.
func ExpandKeyPair(stretched [stretchSize]byte) KeyPair {
	var out KeyPair

	copy(out.PrivateKey[:], ed25519.NewKeyFromSeed(stretched[:]))
	out.PublicKey = out.PrivateKey.Public()

	return out
}

// DeriveKeyPair deterministically derives a keypair from seed.
func DeriveKeyPair(seed Seed) KeyPair {
	return ExpandKeyPair(StretchSeed(seed))
}

// DeriveChildSeed derives a seed of len(master) bytes from master and label.
// Distinct labels give unrelated children, and neither the master nor a
// sibling can be recovered from a child. master must be 1 to 64 bytes long.
func DeriveChildSeed(master Seed, label []byte) (Seed, error) {
	if len(master) == 0 || len(master) > blake2b.Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidMasterSize, len(master))
	}

	child, err := hasher.Blake2bSum(len(master), master, label)
	if err != nil {
		return nil, fmt.Errorf("failed to derive child seed: %w", err)
	}

	return child, nil
}
