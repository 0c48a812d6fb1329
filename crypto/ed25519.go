package crypto

import (
	"crypto/ed25519"
)

// Sign produces a deterministic ed25519 signature over a canonical hash.
func Sign(hash Hash, privateKey PrivateKey) Signature {
	var out Signature

	copy(out[:], ed25519.Sign(ed25519.PrivateKey(privateKey[:]), hash[:]))

	return out
}

// Verify reports whether signature is a valid signature of hash by publicKey.
// It returns false on any mismatch, including keys that aren't valid curve points.
func Verify(hash Hash, publicKey PublicKey, signature Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey[:]), hash[:], signature[:])
}

// Ed25519 signs and verifies canonical hashes with a single keypair.
// A verifier-only instance has a zero private key; signing with it fails.
type Ed25519 struct {
	publicKey  PublicKey
	privateKey PrivateKey
	canSign    bool
}

var _ SignerVerifier = Ed25519{} //nolint:exhaustruct

// NewEd25519 creates a signer/verifier for the given keypair.
func NewEd25519(privateKey PrivateKey) Ed25519 {
	return Ed25519{
		publicKey:  privateKey.Public(),
		privateKey: privateKey,
		canSign:    true,
	}
}

// NewEd25519Verifier creates a verifier bound to a public key.
func NewEd25519Verifier(publicKey PublicKey) Ed25519 {
	return Ed25519{
		publicKey:  publicKey,
		privateKey: PrivateKey{},
		canSign:    false,
	}
}

// Name implements SignerVerifier interface.
func (e Ed25519) Name() string {
	return AlgorithmEd25519.String()
}

// PublicKey returns the key signatures are checked against.
func (e Ed25519) PublicKey() PublicKey {
	return e.publicKey
}

// Sign implements Signer interface. data must be a canonical hash.
func (e Ed25519) Sign(data []byte) ([]byte, error) {
	if !e.canSign {
		return nil, errNoPrivateKey
	}

	hash, err := hashFromBytes(data)
	if err != nil {
		return nil, err
	}

	signature := Sign(hash, e.privateKey)

	return signature[:], nil
}

// Verify implements Verifier interface. data must be a canonical hash.
func (e Ed25519) Verify(data []byte, signature []byte) error {
	hash, err := hashFromBytes(data)
	if err != nil {
		return err
	}

	sig, err := SignatureFromBytes(signature)
	if err != nil {
		return err
	}

	if !Verify(hash, e.publicKey, sig) {
		return ErrSignatureFailed
	}

	return nil
}

func hashFromBytes(data []byte) (Hash, error) {
	var out Hash
	if len(data) != HashSize {
		return out, sizeError(ErrInvalidHashSize, HashSize, len(data))
	}

	copy(out[:], data)

	return out, nil
}
