package curve

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Compressed point encoding widths in bytes.
const (
	G1Size = bls12381.SizeOfG1AffineCompressed
	G2Size = bls12381.SizeOfG2AffineCompressed
)

var (
	g1Gen bls12381.G1Affine
	g2Gen bls12381.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bls12381.Generators()
}

// PointG1 represents a point in the G1 group of BLS12-381.
// It wraps gnark-crypto's affine representation. The zero value is
// the identity element (point at infinity).
type PointG1 struct {
	inner bls12381.G1Affine
}

// NewPointG1 creates a new G1 point initialized to the identity.
func NewPointG1() *PointG1 {
	return &PointG1{}
}

// G1Generator returns the standard base point of G1.
func G1Generator() *PointG1 {
	var p PointG1
	p.inner.Set(&g1Gen)
	return &p
}

// Add sets p to a + b and returns p.
func (p *PointG1) Add(a, b *PointG1) *PointG1 {
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *PointG1) Negate(a *PointG1) *PointG1 {
	p.inner.Neg(&a.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *PointG1) ScalarMult(s *Scalar, q *PointG1) *PointG1 {
	var k big.Int
	s.bigInt(&k)
	p.inner.ScalarMultiplication(&q.inner, &k)
	k.SetInt64(0)
	return p
}

// Set copies the value of a into p and returns p.
func (p *PointG1) Set(a *PointG1) *PointG1 {
	p.inner.Set(&a.inner)
	return p
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *PointG1) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a 48-byte compressed encoding and returns p.
// Returns an error if the input has the wrong length, is not a valid
// curve point, or lies outside the prime-order subgroup.
func (p *PointG1) SetBytes(data []byte) (*PointG1, error) {
	if len(data) != G1Size {
		return nil, errors.New("invalid G1 encoding length")
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *PointG1) Equal(b *PointG1) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *PointG1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// PointG2 represents a point in the G2 group of BLS12-381.
// It wraps gnark-crypto's affine representation. The zero value is
// the identity element (point at infinity).
type PointG2 struct {
	inner bls12381.G2Affine
}

// NewPointG2 creates a new G2 point initialized to the identity.
func NewPointG2() *PointG2 {
	return &PointG2{}
}

// G2Generator returns the standard base point of G2.
func G2Generator() *PointG2 {
	var p PointG2
	p.inner.Set(&g2Gen)
	return &p
}

// Add sets p to a + b and returns p.
func (p *PointG2) Add(a, b *PointG2) *PointG2 {
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *PointG2) Negate(a *PointG2) *PointG2 {
	p.inner.Neg(&a.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *PointG2) ScalarMult(s *Scalar, q *PointG2) *PointG2 {
	var k big.Int
	s.bigInt(&k)
	p.inner.ScalarMultiplication(&q.inner, &k)
	k.SetInt64(0)
	return p
}

// Set copies the value of a into p and returns p.
func (p *PointG2) Set(a *PointG2) *PointG2 {
	p.inner.Set(&a.inner)
	return p
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *PointG2) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a 96-byte compressed encoding and returns p.
// Returns an error if the input has the wrong length, is not a valid
// curve point, or lies outside the prime-order subgroup.
func (p *PointG2) SetBytes(data []byte) (*PointG2, error) {
	if len(data) != G2Size {
		return nil, errors.New("invalid G2 encoding length")
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b represent the same point.
func (p *PointG2) Equal(b *PointG2) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the identity element.
func (p *PointG2) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// PairingCheck reports whether the product of pairings over the given
// point pairs equals one in GT:
//
//	e(p1, q1) * e(p2, q2) * ... == 1
//
// The slices must have equal, non-zero length. A pairing equality
// e(a, b) == e(c, d) is checked as e(-a, b) * e(c, d) == 1.
func PairingCheck(ps []*PointG1, qs []*PointG2) (bool, error) {
	if len(ps) == 0 || len(ps) != len(qs) {
		return false, errors.New("mismatched pairing input lengths")
	}
	g1s := make([]bls12381.G1Affine, len(ps))
	g2s := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		g1s[i].Set(&ps[i].inner)
		g2s[i].Set(&qs[i].inner)
	}
	return bls12381.PairingCheck(g1s, g2s)
}
