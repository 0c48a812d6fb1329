package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignature is returned when a fetched entry fails signature
	// verification. The entry must not be trusted; retrying against the same
	// portal can't fix it.
	ErrInvalidSignature = errors.New("invalid registry entry signature")
	// ErrNotFound is returned when the portal has no entry for the key.
	ErrNotFound = errors.New("registry entry not found")
	// ErrKeyPairMismatch is returned when a keypair's public key doesn't belong to its private key.
	ErrKeyPairMismatch = errors.New("public key does not match private key")
	// ErrStaleRevision is returned by Set when the revision cache knows of a
	// revision at least as high as the one being published.
	ErrStaleRevision = errors.New("stale revision")
)

// PortalResponseError is returned when a portal response can't be decoded.
// Body holds the raw response for diagnostics.
type PortalResponseError struct {
	Body   string
	parent error
}

func errPortalResponse(body []byte, parent error) error {
	return PortalResponseError{Body: string(body), parent: parent}
}

// Unwrap returns the decoding error.
func (e PortalResponseError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the portal response error.
func (e PortalResponseError) Error() string {
	if e.parent == nil {
		return "unexpected portal response: " + e.Body
	}

	return fmt.Sprintf("unexpected portal response: %s: %s", e.parent, e.Body)
}

// StaleRevisionError carries the revisions involved in an ErrStaleRevision.
type StaleRevisionError struct {
	Known     uint64
	Requested uint64
}

func errStaleRevision(known, requested uint64) error {
	return StaleRevisionError{Known: known, Requested: requested}
}

// Is reports ErrStaleRevision as the sentinel of this error.
func (e StaleRevisionError) Is(target error) bool {
	return target == ErrStaleRevision //nolint:errorlint
}

// Error returns a string representation of the stale revision error.
func (e StaleRevisionError) Error() string {
	return fmt.Sprintf("%s: revision %d is not greater than known revision %d",
		ErrStaleRevision, e.Requested, e.Known)
}
