// Package crypto implements signing primitives for registry entries.
//
// Key material is carried in fixed-size array types ([PublicKey], [PrivateKey],
// [Signature]); conversions from raw byte slices validate lengths once, so code
// past those constructors never deals with malformed key sizes.
package crypto

// Signer implements high-level API for signing canonical hashes.
type Signer interface {
	// Name returns name of the crypto algorithm, used by signer.
	Name() string
	// Sign returns signature for passed data.
	Sign(data []byte) ([]byte, error)
}

// Verifier is an interface implementing a generic signature
// verification algorithm.
type Verifier interface {
	// Name returns name of the crypto algorithm, used by verifier.
	Name() string
	// Verify checks data and signature mapping.
	Verify(data []byte, signature []byte) error
}

// SignerVerifier common interface.
type SignerVerifier interface {
	Signer
	Verifier
}
