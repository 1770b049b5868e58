package nubls

import (
	"github.com/f3rmion/nubls/curve"
)

// resignTag domain-separates the hash that maps the shared
// Diffie-Hellman point to the transformation scalar. Both sides of
// the protocol must derive the same scalar, so ResigningKey and
// DesignatedKey use the same tag.
const resignTag = "resign"

// transformationScalar hashes the shared point own*peer to the scalar
// t on which the re-signature protocol is built.
func transformationScalar(own *curve.Scalar, peer *PublicKey) (*curve.Scalar, error) {
	shared := curve.NewPointG1().ScalarMult(own, peer.point)
	return curve.HashToScalar(resignTag, shared.Bytes())
}

// ResigningKey derives the re-signing key rk that authorizes a proxy
// to transform signatures made by k into signatures verifying under
// the designated key agreed with the holder of delegatee. Both
// parties hash the shared point a*b*g1 to a scalar t; the re-signing
// key is t/a.
//
// rk is handed to the proxy and used only with [PrivateKey.Resign].
// It does not reveal k's scalar and is not a signing identity of its
// own. Returns [ErrNotASigningKey] if k is a fragment.
func (k *PrivateKey) ResigningKey(delegatee *PublicKey) (*PrivateKey, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	t, err := transformationScalar(k.scalar, delegatee)
	if err != nil {
		return nil, err
	}
	inv, err := curve.NewScalar().Invert(k.scalar)
	if err != nil {
		t.Zeroize()
		return nil, err
	}
	rk := curve.NewScalar().Mul(inv, t)
	inv.Zeroize()
	t.Zeroize()
	return &PrivateKey{scalar: rk}, nil
}

// DesignatedKey derives the private half of the designated key pair
// for re-signed material, from k (the delegatee's key) and the
// delegator's public key. The matching public key comes from the
// ordinary [PrivateKey.PublicKey] derivation, and re-signed
// signatures verify against it.
//
// Returns [ErrNotASigningKey] if k is a fragment.
func (k *PrivateKey) DesignatedKey(delegator *PublicKey) (*PrivateKey, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	t, err := transformationScalar(k.scalar, delegator)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{scalar: t}, nil
}

// Resign transforms a signature made by the holder of source into a
// signature that verifies under the designated public key. k must be
// the re-signing key from [PrivateKey.ResigningKey]; the proxy calling
// Resign learns neither party's private scalar.
//
// The input signature is verified under source before transforming,
// so a signature that is forged or belongs to a different message
// fails with [ErrInvalidSignature] instead of being propagated under
// the designated identity.
func (k *PrivateKey) Resign(source *PublicKey, message *curve.PointG2, sig *Signature) (*Signature, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	if err := source.Verify(message, sig); err != nil {
		return nil, err
	}
	p := curve.NewPointG2().ScalarMult(k.scalar, sig.point)
	return &Signature{point: p}, nil
}
