// Package revcache remembers the highest revision seen per registry entry.
//
// The registry protocol leaves revision monotonicity to the publisher. A
// Cache lets the registry client refuse to publish a revision that is not
// newer than one it has already fetched or published.
package revcache

import (
	"context"
	"errors"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-skynet/crypto"
)

var (
	// ErrConflict is returned when a revision couldn't be stored because of concurrent writers.
	ErrConflict = errors.New("concurrent revision update")
	// ErrMalformedRecord is returned when a stored record can't be decoded.
	ErrMalformedRecord = errors.New("malformed revision record")
)

// Key identifies a registry entry.
type Key struct {
	PublicKey crypto.PublicKey
	// DataKey is the hashed data key, as sent on the wire.
	DataKey string
}

// String returns "<public key hex>/<hashed data key>".
func (k Key) String() string {
	return k.PublicKey.Hex() + "/" + k.DataKey
}

// Cache stores the highest known revision per entry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Load returns the highest stored revision for key, if any.
	Load(ctx context.Context, key Key) (option.Generic[uint64], error)
	// Store records revision for key. A stored revision is never lowered.
	Store(ctx context.Context, key Key, revision uint64) error
}
