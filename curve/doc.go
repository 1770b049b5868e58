// Package curve provides the BLS12-381 arithmetic used by the nubls
// signature scheme: the scalar field Fr, the two pairing groups G1 and
// G2, their generators, and a multi-pairing product check.
//
// BLS12-381 is a pairing-friendly curve with a bilinear map
//
//	e: G1 x G2 -> GT
//
// Public keys live in G1 (48-byte compressed encoding), messages and
// signatures in G2 (96-byte compressed encoding), and private key
// material in the 255-bit scalar field Fr (32-byte canonical encoding).
//
// This package wraps the BLS12-381 implementation from gnark-crypto,
// exposing only the operations the scheme needs.
//
// # Design Philosophy
//
// Scalars and points use a mutable receiver pattern for efficiency.
// Operations like Add, Mul, and ScalarMult set the receiver to the
// result and return it, allowing method chaining while minimizing
// allocations:
//
//	// Compute a + b*c
//	result := curve.NewScalar().Mul(b, c)
//	result = curve.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking,
// making error handling explicit and predictable.
//
// # Encodings
//
// Every type has exactly one fixed-width canonical encoding:
//
//   - [Scalar]: 32 bytes, big-endian, value strictly below the field
//     order. [Scalar.SetBytes] rejects non-canonical values.
//   - [PointG1]: 48 bytes, compressed. [PointG1.SetBytes] rejects
//     points that are off the curve or outside the prime-order
//     subgroup.
//   - [PointG2]: 96 bytes, compressed, with the same validation.
//
// # Security
//
// Random scalars are drawn from a caller-supplied io.Reader so tests
// can inject deterministic sources; production callers pass
// crypto/rand.Reader. [HashToScalar] derives scalars from byte strings
// using domain-separated BLAKE2b-512 with wide reduction, so the
// result is statistically indistinguishable from uniform.
//
// [Scalar.Zeroize] overwrites a scalar's backing words. This is a
// best-effort wipe; Go does not guarantee that earlier copies made by
// the runtime are erased.
package curve
