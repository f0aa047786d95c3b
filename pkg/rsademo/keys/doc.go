// Package keys derives RSA key pairs from two primes.
//
// Derive is deterministic:
//
//  1. phi = (p-1)(q-1)
//  2. e = the smallest integer >= 2 coprime to phi
//  3. n = p*q
//  4. d = e^-1 mod phi, by the extended Euclidean algorithm
//
// The smallest coprime e is small and predictable. That is a known weakness
// of this engine and is kept for its teaching value. Since phi is even for
// odd primes, e is never 2.
//
// Generate draws primes from a prime.Source and retries with fresh
// randomness when a draw cannot produce a key (p == q, or no usable e).
//
// # Private key handling
//
// PublicKey and PrivateKey are separate types. The private exponent is
// unexported and can only be read with PrivateKey.Exponent. Under fmt, slog
// and zap a PrivateKey renders the redaction placeholder instead of d, so it
// is safe to pass to a logger by accident. Call Zeroize when done with it.
package keys
