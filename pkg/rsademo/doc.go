// Package rsademo is a small educational RSA engine. It draws two primes,
// derives a key pair from them and encrypts a single integer message with
// square-and-multiply modular exponentiation.
//
// The arithmetic lives in sub-packages:
//
//   - modarith: modular inverse (extended Euclid) and modular exponentiation
//   - prime: the Source capability and its sieve and Miller–Rabin implementations
//   - keys: key derivation, generation with retries, and validation
//   - cryptogram: encryption and decryption of integers in [0, n)
//   - logging: the logger facade shared by the packages above
//
// This package holds what they share: the error taxonomy, the run
// configuration and version information.
//
// The engine is not a secure RSA implementation. It has no padding, no
// constant-time arithmetic and picks the smallest public exponent that works.
// Use crypto/rsa for anything real.
package rsademo
