package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// PublicKeySize is the size of an ed25519 public key in bytes.
	PublicKeySize = ed25519.PublicKeySize
	// PrivateKeySize is the size of an ed25519 private key in bytes.
	PrivateKeySize = ed25519.PrivateKeySize
	// SignatureSize is the size of an ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize
	// HashSize is the size of a canonical entry hash in bytes.
	HashSize = 32
)

// Algorithm identifies a signature scheme on the wire.
type Algorithm int

const (
	// AlgorithmUnknown is the zero value, never valid on the wire.
	AlgorithmUnknown Algorithm = iota
	// AlgorithmEd25519 is the ed25519 signature scheme.
	AlgorithmEd25519
)

const ed25519Name = "ed25519"

// String returns the wire identifier of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmEd25519:
		return ed25519Name
	case AlgorithmUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != AlgorithmEd25519 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// ParseAlgorithm decodes a wire identifier.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case ed25519Name:
		return AlgorithmEd25519, nil
	default:
		return AlgorithmUnknown, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Hash is a canonical entry digest, the exact input of Sign and Verify.
type Hash [HashSize]byte

// PublicKey is an ed25519 public key.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes copies b into a PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var out PublicKey
	if len(b) != PublicKeySize {
		return out, sizeError(ErrInvalidKeySize, PublicKeySize, len(b))
	}

	copy(out[:], b)

	return out, nil
}

// Algorithm returns the signature scheme of the key.
func (k PublicKey) Algorithm() Algorithm {
	return AlgorithmEd25519
}

// Hex returns the lower-case hex encoding of the raw key.
func (k PublicKey) Hex() string {
	return hex.EncodeToString(k[:])
}

// String returns the algorithm-tagged form, e.g. "ed25519:ab12...".
func (k PublicKey) String() string {
	return k.Algorithm().String() + ":" + k.Hex()
}

// MarshalJSON encodes the key the way publish requests carry it:
// {"algorithm":"ed25519","key":[...]}.
func (k PublicKey) MarshalJSON() ([]byte, error) {
	out, err := json.Marshal(struct {
		Algorithm Algorithm `json:"algorithm"`
		Key       ByteArray `json:"key"`
	}{
		Algorithm: k.Algorithm(),
		Key:       k[:],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	return out, nil
}

// ParsePublicKey decodes an algorithm-tagged key string such as
// "ed25519:<64 hex chars>". Tags are matched exactly.
func ParsePublicKey(s string) (PublicKey, error) {
	tag, rawHex, found := strings.Cut(s, ":")
	if !found {
		return PublicKey{}, fmt.Errorf("%w: missing algorithm tag", ErrMalformedPublicKey)
	}

	if _, err := ParseAlgorithm(tag); err != nil {
		return PublicKey{}, err
	}

	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrMalformedPublicKey, err)
	}

	return PublicKeyFromBytes(raw)
}

// PrivateKey is an ed25519 private key: the 32-byte seed followed by the public key.
type PrivateKey [PrivateKeySize]byte

// PrivateKeyFromBytes copies b into a PrivateKey.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var out PrivateKey
	if len(b) != PrivateKeySize {
		return out, sizeError(ErrInvalidKeySize, PrivateKeySize, len(b))
	}

	copy(out[:], b)

	return out, nil
}

// Public returns the public half of the key.
func (k PrivateKey) Public() PublicKey {
	var out PublicKey

	copy(out[:], k[PrivateKeySize-PublicKeySize:])

	return out
}

// Matches reports whether k is a consistent keypair for publicKey. Both the
// key derived from the seed half and the stored public half must equal it.
func (k PrivateKey) Matches(publicKey PublicKey) bool {
	derived := ed25519.NewKeyFromSeed(k[:ed25519.SeedSize])

	return bytes.Equal(derived[ed25519.SeedSize:], publicKey[:]) && k.Public() == publicKey
}

// String hides key material from logs and fmt verbs.
func (k PrivateKey) String() string {
	return "ed25519:<private>"
}

// Signature is an ed25519 signature.
type Signature [SignatureSize]byte

// SignatureFromBytes copies b into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var out Signature
	if len(b) != SignatureSize {
		return out, sizeError(ErrInvalidSignatureSize, SignatureSize, len(b))
	}

	copy(out[:], b)

	return out, nil
}

// Hex returns the lower-case hex encoding of the signature.
func (s Signature) Hex() string {
	return hex.EncodeToString(s[:])
}

// ByteArray is a byte slice that marshals to a JSON array of numbers
// instead of base64. Registry publish bodies use this encoding for every
// binary field.
type ByteArray []byte

// MarshalJSON implements json.Marshaler.
func (b ByteArray) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}

	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}

	out, err := json.Marshal(ints)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal byte array: %w", err)
	}

	return out, nil
}

// UnmarshalJSON accepts a JSON array of numbers in 0..255.
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	// A plain []byte target would expect base64, so decode through a wider type.
	var wide []uint16
	if err := json.Unmarshal(data, &wide); err != nil {
		return fmt.Errorf("failed to unmarshal byte array: %w", err)
	}

	out := make([]byte, len(wide))
	for i, v := range wide {
		if v > 0xff {
			return fmt.Errorf("%w: element %d out of range: %d", ErrMalformedByteArray, i, v)
		}

		out[i] = byte(v)
	}

	*b = out

	return nil
}
