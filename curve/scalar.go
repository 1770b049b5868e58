package curve

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"
)

// ScalarSize is the width of the canonical scalar encoding in bytes.
const ScalarSize = fr.Bytes

// hashPrefix is the domain separation prefix for [HashToScalar].
const hashPrefix = "NUBLS-BLS12381-BLAKE512-v1"

// Scalar represents an element of the BLS12-381 scalar field Fr.
// It implements modular arithmetic over the prime subgroup order by
// wrapping gnark-crypto's fr.Element.
//
// All arithmetic operations keep results in the range [0, r) where r
// is the field order.
type Scalar struct {
	inner fr.Element
}

// NewScalar creates a new scalar initialized to zero.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Sub(&a.inner, &b.inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Mul(&a.inner, &b.inner)
	return s
}

// Negate sets s to -a (mod r) and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.inner.Neg(&a.inner)
	return s
}

// Invert sets s to a^(-1) (mod r) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&a.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner.Set(&a.inner)
	return s
}

// SetUint64 sets s to the given small integer and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as its canonical 32-byte big-endian
// representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a canonical 32-byte big-endian encoding and
// returns s. Returns an error if the input is not exactly
// [ScalarSize] bytes or encodes a value at or above the field order.
func (s *Scalar) SetBytes(data []byte) (*Scalar, error) {
	if len(data) != ScalarSize {
		return nil, errors.New("invalid scalar encoding length")
	}
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b *Scalar) bool {
	return s.inner.Equal(&b.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites the scalar's backing words with zeros.
// This is a best-effort cleanup; Go does not guarantee that copies
// made by the runtime are also erased.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
}

// bigInt writes the scalar's integer value into res and returns it.
// Used for scalar multiplication, which gnark-crypto takes as big.Int.
func (s *Scalar) bigInt(res *big.Int) *big.Int {
	return s.inner.BigInt(res)
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. Sixty-four bytes are read and reduced wide,
// so the result is uniformly distributed in [0, r).
func RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [2 * ScalarSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := NewScalar()
	s.inner.SetBytes(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using BLAKE2b-512
// under the package's domain separation prefix and the given tag.
// The 64-byte digest is reduced wide modulo the field order.
func HashToScalar(tag string, data ...[]byte) (*Scalar, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}
	h.Write([]byte(hashPrefix))
	h.Write([]byte(tag))
	for _, d := range data {
		h.Write(d)
	}
	digest := h.Sum(nil)

	s := NewScalar()
	s.inner.SetBytes(digest)
	return s, nil
}
