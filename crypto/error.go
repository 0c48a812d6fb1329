package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeySize is returned when raw key bytes have the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidSignatureSize is returned when raw signature bytes have the wrong length.
	ErrInvalidSignatureSize = errors.New("invalid signature size")
	// ErrInvalidHashSize is returned when data passed to Signer or Verifier is not a canonical hash.
	ErrInvalidHashSize = errors.New("invalid hash size")
	// ErrUnknownAlgorithm is returned for algorithm identifiers other than ed25519.
	ErrUnknownAlgorithm = errors.New("unknown signature algorithm")
	// ErrMalformedPublicKey is returned when a tagged public key string can't be decoded.
	ErrMalformedPublicKey = errors.New("malformed public key")
	// ErrMalformedByteArray is returned when a JSON byte array holds values outside 0..255.
	ErrMalformedByteArray = errors.New("malformed byte array")
	// ErrSignatureFailed is returned when signature verification fails.
	ErrSignatureFailed = errors.New("signature verification failed")

	errNoPrivateKey = errors.New("failed to sign: no private key")
)

func sizeError(parent error, expected, got int) error {
	return fmt.Errorf("%w: expected %d bytes, got %d", parent, expected, got)
}
