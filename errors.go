package nubls

import "errors"

// Sentinel errors returned by the scheme. Callers match them with
// errors.Is; some call sites wrap them with additional detail.
var (
	// ErrInvalidSignature is returned when a pairing check fails
	// during verification, or when the input signature to Resign
	// does not verify under the source public key.
	ErrInvalidSignature = errors.New("nubls: invalid signature")

	// ErrMalformedInput is returned when a decode call receives a
	// byte buffer whose length or content does not match the
	// fixed-width canonical encoding of the requested type.
	ErrMalformedInput = errors.New("nubls: malformed input")

	// ErrNotASigningKey is returned when signing, public key
	// derivation, splitting, or re-signing key derivation is
	// attempted on a key fragment rather than a full key.
	ErrNotASigningKey = errors.New("nubls: not a signing key")

	// ErrNotAFragment is returned when Recover is given a full key
	// where a fragment is required.
	ErrNotAFragment = errors.New("nubls: not a key fragment")

	// ErrInvalidThresholdParameters is returned when Split is called
	// with a threshold m outside [1, n].
	ErrInvalidThresholdParameters = errors.New("nubls: invalid threshold parameters")

	// ErrInsufficientShares is returned when Recover is called with
	// fewer fragments than the reconstruction threshold, or with
	// fragments whose indices are not distinct.
	ErrInsufficientShares = errors.New("nubls: insufficient shares")
)
