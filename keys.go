package nubls

import (
	"fmt"
	"io"

	"github.com/f3rmion/nubls/curve"
)

// Encoded widths in bytes for the types in this package.
const (
	PrivateKeySize = curve.ScalarSize     // full private key: raw scalar
	FragmentSize   = 2 * curve.ScalarSize // fragment: scalar then index
	PublicKeySize  = curve.G1Size         // compressed G1 point
	SignatureSize  = curve.G2Size         // compressed G2 point
	MessageSize    = curve.G2Size         // compressed G2 point
)

// PrivateKey is the secret half of a key pair. It is either a full
// signing key or a fragment produced by [PrivateKey.Split]; the two
// variants are distinguished by [PrivateKey.IsFragment], and fragment
// misuse surfaces as [ErrNotASigningKey].
//
// PrivateKey values are immutable after construction. [PrivateKey.Zeroize]
// wipes the secret scalar when the key is no longer needed.
type PrivateKey struct {
	scalar *curve.Scalar
	index  *curve.Scalar // nil for a full key, non-zero for a fragment
}

// PublicKey is the public half of a key pair, a point in G1.
type PublicKey struct {
	point *curve.PointG1
}

// Signature is a BLS signature, a point in G2.
type Signature struct {
	point *curve.PointG2
}

// GenerateKey samples a uniformly random full private key from the
// provided random source. A failure of the source is returned
// unchanged; there is no fallback.
func GenerateKey(r io.Reader) (*PrivateKey, error) {
	s, err := curve.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{scalar: s}, nil
}

// IsFragment reports whether k is a fragment of a split key rather
// than a full signing key.
func (k *PrivateKey) IsFragment() bool {
	return k.index != nil
}

// PublicKey derives the public key s*g1. Returns [ErrNotASigningKey]
// if k is a fragment, which has no independent signing identity.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	p := curve.NewPointG1().ScalarMult(k.scalar, curve.G1Generator())
	return &PublicKey{point: p}, nil
}

// Sign produces the signature s*message over a caller-supplied G2
// message point. Returns [ErrNotASigningKey] if k is a fragment.
func (k *PrivateKey) Sign(message *curve.PointG2) (*Signature, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	p := curve.NewPointG2().ScalarMult(k.scalar, message)
	return &Signature{point: p}, nil
}

// Verify checks the pairing equality e(g1, sig) == e(pk, message).
// It returns nil when the equality holds and [ErrInvalidSignature]
// otherwise. Failure is an error rather than a boolean so callers
// cannot ignore it by mistake.
func (pk *PublicKey) Verify(message *curve.PointG2, sig *Signature) error {
	negGen := curve.NewPointG1().Negate(curve.G1Generator())
	ok, err := curve.PairingCheck(
		[]*curve.PointG1{negGen, pk.point},
		[]*curve.PointG2{sig.point, message},
	)
	if err != nil || !ok {
		return ErrInvalidSignature
	}
	return nil
}

// Bytes returns the fixed-width encoding of k: 32 bytes for a full
// key, 64 bytes (scalar then index) for a fragment.
func (k *PrivateKey) Bytes() []byte {
	if !k.IsFragment() {
		return k.scalar.Bytes()
	}
	out := make([]byte, 0, FragmentSize)
	out = append(out, k.scalar.Bytes()...)
	out = append(out, k.index.Bytes()...)
	return out
}

// ParsePrivateKey decodes a private key from its fixed-width encoding.
// The variant is selected by length: [PrivateKeySize] bytes decode a
// full key, [FragmentSize] bytes a fragment. Any other length, a
// non-canonical scalar, or a zero fragment index fails with
// [ErrMalformedInput].
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	switch len(data) {
	case PrivateKeySize:
		s, err := curve.NewScalar().SetBytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		return &PrivateKey{scalar: s}, nil
	case FragmentSize:
		s, err := curve.NewScalar().SetBytes(data[:curve.ScalarSize])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		idx, err := curve.NewScalar().SetBytes(data[curve.ScalarSize:])
		if err != nil {
			s.Zeroize()
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if idx.IsZero() {
			s.Zeroize()
			return nil, fmt.Errorf("%w: fragment index must be non-zero", ErrMalformedInput)
		}
		return &PrivateKey{scalar: s, index: idx}, nil
	default:
		return nil, fmt.Errorf("%w: private key must be %d or %d bytes, got %d",
			ErrMalformedInput, PrivateKeySize, FragmentSize, len(data))
	}
}

// Equal reports whether k and b are the same variant with the same
// scalar (and, for fragments, the same index).
func (k *PrivateKey) Equal(b *PrivateKey) bool {
	if k.IsFragment() != b.IsFragment() {
		return false
	}
	if !k.scalar.Equal(b.scalar) {
		return false
	}
	if k.IsFragment() && !k.index.Equal(b.index) {
		return false
	}
	return true
}

// Zeroize overwrites the key's secret scalar (and fragment index)
// with zeros. The key must not be used afterwards. Best-effort: Go
// does not guarantee that runtime copies are erased.
func (k *PrivateKey) Zeroize() {
	k.scalar.Zeroize()
	if k.index != nil {
		k.index.Zeroize()
	}
}

// Bytes returns the 48-byte compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return pk.point.Bytes()
}

// ParsePublicKey decodes a public key from its 48-byte compressed
// encoding. Wrong lengths, off-curve points, and points outside the
// prime-order subgroup fail with [ErrMalformedInput].
func ParsePublicKey(data []byte) (*PublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrMalformedInput, PublicKeySize, len(data))
	}
	p, err := curve.NewPointG1().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &PublicKey{point: p}, nil
}

// Equal reports whether pk and b represent the same point.
func (pk *PublicKey) Equal(b *PublicKey) bool {
	return pk.point.Equal(b.point)
}

// Bytes returns the 96-byte compressed encoding of the signature.
func (s *Signature) Bytes() []byte {
	return s.point.Bytes()
}

// ParseSignature decodes a signature from its 96-byte compressed
// encoding, with the same validation as [ParsePublicKey].
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d",
			ErrMalformedInput, SignatureSize, len(data))
	}
	p, err := curve.NewPointG2().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &Signature{point: p}, nil
}

// Equal reports whether s and b represent the same point.
func (s *Signature) Equal(b *Signature) bool {
	return s.point.Equal(b.point)
}

// ParseMessage decodes a caller-encoded message point from its
// 96-byte compressed G2 encoding. Mapping application data onto the
// curve (hash-to-curve) is outside the scope of this package; this
// helper only validates and decodes an already-mapped point.
func ParseMessage(data []byte) (*curve.PointG2, error) {
	if len(data) != MessageSize {
		return nil, fmt.Errorf("%w: message must be %d bytes, got %d",
			ErrMalformedInput, MessageSize, len(data))
	}
	p, err := curve.NewPointG2().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return p, nil
}
