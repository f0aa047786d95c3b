// Package modarith implements the modular arithmetic behind the RSA engine.
//
//   - ModInverse: the u in [1, m) with a*u ≡ 1 (mod m), by the extended
//     Euclidean algorithm in O(log m) steps
//   - ModPow: base^exponent mod modulus by iterative square-and-multiply
//   - ModPowChecked: ModPow with the precondition checks used when validating
//     keys (base < modulus, gcd(base, modulus) = 1)
//
// All functions operate on math/big integers of any size, never modify their
// arguments and are safe for concurrent use. None of them run in constant
// time.
package modarith
