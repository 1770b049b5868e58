package nubls

import (
	"fmt"
	"io"

	"github.com/f3rmion/nubls/curve"
)

// Split divides a full private key into n fragments such that any m
// of them reconstruct the original key via [Recover], using Shamir
// secret sharing over the scalar field.
//
// A random polynomial of degree m-1 is built with the secret scalar
// as its constant term and evaluated at the public indices 1..n. The
// m-1 random coefficients are drawn from r and wiped before Split
// returns.
//
// Returns [ErrNotASigningKey] if k is a fragment and
// [ErrInvalidThresholdParameters] unless 1 <= m <= n.
func (k *PrivateKey) Split(r io.Reader, m, n int) ([]*PrivateKey, error) {
	if k.IsFragment() {
		return nil, ErrNotASigningKey
	}
	if m < 1 || m > n {
		return nil, fmt.Errorf("%w: m=%d n=%d", ErrInvalidThresholdParameters, m, n)
	}

	coeffs := make([]*curve.Scalar, m)
	coeffs[0] = curve.NewScalar().Set(k.scalar)
	for i := 1; i < m; i++ {
		c, err := curve.RandomScalar(r)
		if err != nil {
			zeroizeScalars(coeffs[:i])
			return nil, err
		}
		coeffs[i] = c
	}
	defer zeroizeScalars(coeffs)

	fragments := make([]*PrivateKey, n)
	for i := 0; i < n; i++ {
		x := curve.NewScalar().SetUint64(uint64(i + 1))
		fragments[i] = &PrivateKey{
			scalar: evalPolynomial(coeffs, x),
			index:  x,
		}
	}
	return fragments, nil
}

// Recover reconstructs a full private key from at least m fragments
// of a key split with threshold m, by Lagrange interpolation at zero.
// Any qualifying subset of distinct-index fragments reconstructs the
// identical key; supplying extra fragments is allowed.
//
// The threshold is not embedded in a fragment's encoding, so the
// caller must supply the m used at split time. Interpolating fewer
// than m points would silently produce a wrong scalar, which is why
// too few fragments fail with [ErrInsufficientShares] instead.
// Duplicate indices also fail with [ErrInsufficientShares], and a
// full key in the list fails with [ErrNotAFragment].
func Recover(fragments []*PrivateKey, m int) (*PrivateKey, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: m=%d", ErrInvalidThresholdParameters, m)
	}
	if len(fragments) < m {
		return nil, fmt.Errorf("%w: need %d fragments, got %d",
			ErrInsufficientShares, m, len(fragments))
	}

	seen := make(map[string]struct{}, len(fragments))
	for _, f := range fragments {
		if !f.IsFragment() {
			return nil, ErrNotAFragment
		}
		key := string(f.index.Bytes())
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate fragment index", ErrInsufficientShares)
		}
		seen[key] = struct{}{}
	}

	secret, err := interpolateAtZero(fragments)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{scalar: secret}, nil
}

// evalPolynomial evaluates the polynomial with the given coefficients
// (constant term first) at x using Horner's rule.
func evalPolynomial(coeffs []*curve.Scalar, x *curve.Scalar) *curve.Scalar {
	result := curve.NewScalar().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = curve.NewScalar().Mul(result, x)
		result = curve.NewScalar().Add(result, coeffs[i])
	}
	return result
}

// interpolateAtZero computes the constant term of the polynomial
// passing through the fragments' (index, scalar) pairs:
//
//	s = sum_i y_i * prod_{j != i} x_j / (x_j - x_i)
//
// Indices must be distinct; the caller has already checked this, so a
// zero denominator cannot occur.
func interpolateAtZero(fragments []*PrivateKey) (*curve.Scalar, error) {
	secret := curve.NewScalar()
	for i, fi := range fragments {
		num := curve.NewScalar().SetUint64(1)
		den := curve.NewScalar().SetUint64(1)
		for j, fj := range fragments {
			if j == i {
				continue
			}
			num = curve.NewScalar().Mul(num, fj.index)
			diff := curve.NewScalar().Sub(fj.index, fi.index)
			den = curve.NewScalar().Mul(den, diff)
		}
		denInv, err := curve.NewScalar().Invert(den)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientShares, err)
		}
		coeff := curve.NewScalar().Mul(num, denInv)
		term := curve.NewScalar().Mul(fi.scalar, coeff)
		secret = curve.NewScalar().Add(secret, term)
	}
	return secret, nil
}

func zeroizeScalars(scalars []*curve.Scalar) {
	for _, s := range scalars {
		if s != nil {
			s.Zeroize()
		}
	}
}
