// Package hasher provides types and interfaces for hash calculating.
package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

var (
	// ErrDataIsNil is returned if the passed data is nil.
	ErrDataIsNil = errors.New("data is nil")
	// ErrInvalidSize is returned for BLAKE2b output sizes outside 1..64.
	ErrInvalidSize = errors.New("invalid digest size")
)

// Blake2b256Size is the digest size used for data keys and canonical entry hashes.
const Blake2b256Size = 32

// Hasher is the interface that registry hashers must implement.
// It provides low-level operations for hash calculating.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type blake2bHasher struct {
	size int
}

// NewBlake2b256Hasher creates a new 32-byte BLAKE2b Hasher.
func NewBlake2b256Hasher() Hasher {
	return blake2bHasher{size: Blake2b256Size}
}

// Name implements Hasher interface.
func (h blake2bHasher) Name() string {
	return fmt.Sprintf("blake2b-%d", h.size*8)
}

// Hash implements Hasher interface.
func (h blake2bHasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	return Blake2bSum(h.size, data)
}

// Blake2bSum returns the unkeyed BLAKE2b digest of size bytes over parts
// written in order. It is the same as hashing the concatenation of parts.
func Blake2bSum(size int, parts ...[]byte) ([]byte, error) {
	if size < 1 || size > blake2b.Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	digest, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create hasher: %w", err)
	}

	for _, part := range parts {
		n, err := digest.Write(part)
		if n < len(part) || err != nil {
			return nil, fmt.Errorf("failed to write data: %w", err)
		}
	}

	return digest.Sum(nil), nil
}
