package registry

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/hasher"
)

// Entry is one version of a named record in a public key's namespace.
type Entry struct {
	// DataKey names the record within the namespace.
	DataKey string
	// Data is the opaque payload.
	Data []byte
	// Revision must be strictly greater than every revision previously
	// published for the same public key and data key. Nothing in this
	// package enforces that unless a revision cache is configured.
	Revision uint64
}

// SignedEntry is an Entry with the signature over its canonical hash.
// SignedEntry values returned by Registry.Get have always been verified.
type SignedEntry struct {
	Entry     Entry
	Signature crypto.Signature
}

// HashedDataKey is the on-wire form of a data key: the lower-case hex of
// its 32-byte BLAKE2b digest.
type HashedDataKey string

// NormalizeDataKey returns the on-wire form of dataKey. With alreadyHashed the
// caller asserts dataKey is already a hashed data key and it is returned as is.
// The same choice must be made when publishing and fetching a key.
func NormalizeDataKey(dataKey string, alreadyHashed bool) HashedDataKey {
	if alreadyHashed {
		return HashedDataKey(dataKey)
	}

	data := []byte(dataKey)
	if data == nil {
		// The empty data key is valid; Hash only rejects nil.
		data = []byte{}
	}

	digest, err := dataKeyHasher.Hash(data)
	if err != nil {
		panic("unreachable: " + err.Error())
	}

	return HashedDataKey(hex.EncodeToString(digest))
}

// CanonicalHash returns the digest signed for entry: BLAKE2b-256 over the
// hashed data key (hex text), the data and the decimal revision, in that order.
func CanonicalHash(entry Entry, alreadyHashed bool) crypto.Hash {
	return sum256(
		[]byte(NormalizeDataKey(entry.DataKey, alreadyHashed)),
		entry.Data,
		[]byte(strconv.FormatUint(entry.Revision, 10)),
	)
}

// Sign signs the canonical hash of entry.
func Sign(entry Entry, privateKey crypto.PrivateKey, alreadyHashed bool) SignedEntry {
	return SignedEntry{
		Entry:     entry,
		Signature: crypto.Sign(CanonicalHash(entry, alreadyHashed), privateKey),
	}
}

// Verify checks the signature of s against publicKey. It returns
// ErrInvalidSignature if the entry is not authentic.
func (s SignedEntry) Verify(publicKey crypto.PublicKey, alreadyHashed bool) error {
	hash := CanonicalHash(s.Entry, alreadyHashed)

	err := crypto.NewEd25519Verifier(publicKey).Verify(hash[:], s.Signature[:])
	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrSignatureFailed):
		return ErrInvalidSignature
	default:
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
}

var dataKeyHasher = hasher.NewBlake2b256Hasher()

func sum256(parts ...[]byte) crypto.Hash {
	var out crypto.Hash

	digest, err := hasher.Blake2bSum(hasher.Blake2b256Size, parts...)
	if err != nil {
		// Blake2bSum fails only for invalid sizes.
		panic("unreachable: " + err.Error())
	}

	copy(out[:], digest)

	return out
}
