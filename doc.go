// Package nubls implements a threshold, delegatable BLS signature
// scheme over the BLS12-381 pairing-friendly curve.
//
// A [PrivateKey] is a scalar s; its [PublicKey] is s*g1 in G1 and a
// [Signature] over a message point M in G2 is s*M. Verification checks
// the pairing equality e(g1, sig) == e(pk, M). The scheme accepts an
// already-encoded G2 point as the message: mapping application data to
// a curve point (hash-to-curve) is the caller's responsibility.
//
// On top of the base scheme the package provides two independent
// protocols:
//
// # Threshold Secret Sharing
//
// [PrivateKey.Split] divides a full key into n fragments such that any
// m of them reconstruct the original key, using Shamir secret sharing
// over the scalar field:
//
//  1. A random polynomial of degree m-1 is built whose constant term
//     is the secret scalar.
//  2. The polynomial is evaluated at the public indices 1..n; each
//     evaluation becomes a fragment.
//  3. [Recover] interpolates any m or more fragments at zero to
//     reconstruct the secret (Lagrange interpolation).
//
// Fragments are not signing keys: [PrivateKey.Sign] and
// [PrivateKey.PublicKey] refuse to operate on them, and
// [PrivateKey.IsFragment] distinguishes the two variants. The
// reconstruction threshold m is not embedded in a fragment's 64-byte
// encoding; callers track it out of band and pass it to [Recover],
// which refuses to interpolate fewer than m fragments.
//
// # Proxy Re-Signature
//
// Delegation lets a semi-trusted proxy transform signatures made by
// Alice into signatures that verify under a designated key agreed with
// Bob, without the proxy learning either private scalar:
//
//  1. Alice derives rk = [PrivateKey.ResigningKey] from her key and
//     Bob's public key, and hands rk to the proxy.
//  2. Bob derives the designated key with [PrivateKey.DesignatedKey]
//     from his key and Alice's public key; its public half comes from
//     the ordinary [PrivateKey.PublicKey] derivation.
//  3. The proxy calls [PrivateKey.Resign] on rk with one of Alice's
//     signatures; the result verifies under the designated public key
//     and no longer under Alice's.
//
// Both derivations hash the shared Diffie-Hellman point a*b*g1 to a
// scalar t; the resigning key is t/a and the designated key is t, so
// resigning maps a*M to t*M. Resign verifies its input under the
// source public key before transforming, so forged material is never
// propagated under the designated identity.
//
// # Example
//
// Basic signing with a 2-of-3 custody split:
//
//	key, _ := nubls.GenerateKey(rand.Reader)
//	pub, _ := key.PublicKey()
//
//	sig, _ := key.Sign(message) // message is a *curve.PointG2
//	err := pub.Verify(message, sig)
//
//	fragments, _ := key.Split(rand.Reader, 2, 3)
//	recovered, _ := nubls.Recover(fragments[:2], 2)
//
// # Encodings
//
// All encodings are fixed width and round-trip exactly: 32 bytes for a
// full private key, 64 for a fragment (scalar then index, so decode
// disambiguates by length), 48 for a public key (compressed G1), 96
// for a signature or message point (compressed G2). Parse functions
// reject any other length with [ErrMalformedInput]; they never
// truncate or pad.
//
// # Security Considerations
//
// Every entropy-consuming operation takes an io.Reader; pass
// crypto/rand.Reader outside of tests. Secret-bearing values expose
// [PrivateKey.Zeroize] to overwrite their backing memory, and internal
// intermediates (polynomial coefficients, inverted scalars) are wiped
// before returning. This is best-effort: Go does not guarantee that
// runtime copies are erased.
//
// A resigning key must be given only to the proxy and used only with
// [PrivateKey.Resign]; it is not a signing identity. Fewer than m
// fragments reveal nothing about a split key, but interpolating them
// would silently yield a wrong scalar, which is why [Recover] demands
// the threshold explicitly.
package nubls
