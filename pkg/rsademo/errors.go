package rsademo

import (
	"github.com/pkg/errors"
)

// Arithmetic failures. Sub-packages return these wrapped with context, so
// callers should match them with errors.Is.
var (
	// ErrZeroModulus indicates a reduction or exponentiation modulo zero.
	ErrZeroModulus = errors.New("modulus is zero")

	// ErrInvalidModulus indicates a negative modulus.
	ErrInvalidModulus = errors.New("modulus is negative")

	// ErrNegativeExponent indicates a negative exponent passed to ModPow.
	ErrNegativeExponent = errors.New("exponent is negative")

	// ErrNoInverseExists indicates gcd(a, m) != 1, so a has no inverse modulo m.
	ErrNoInverseExists = errors.New("no modular inverse exists")

	// ErrBaseExceedsModulus is returned by the checked exponentiation when the
	// base is not reduced. Such a message would have to be split into blocks.
	ErrBaseExceedsModulus = errors.New("base is >= modulus")

	// ErrNotCoprime is returned by the checked exponentiation when base and
	// modulus share a factor.
	ErrNotCoprime = errors.New("base and modulus are not relatively prime")
)

// Prime selection failures.
var (
	// ErrNoPrimeFound indicates that the bound is too small to contain a prime.
	ErrNoPrimeFound = errors.New("no prime found below bound")

	// ErrBoundTooLarge indicates a bound the sieve cannot enumerate.
	ErrBoundTooLarge = errors.New("bound too large for sieve")

	// ErrNotPrime indicates a composite value where a prime was required.
	ErrNotPrime = errors.New("value is not prime")
)

// Key derivation and usage failures.
var (
	// ErrEqualPrimes indicates p == q. The modulus would be a square and the
	// totient formula (p-1)(q-1) would not hold.
	ErrEqualPrimes = errors.New("primes p and q are equal")

	// ErrNoCoprimeExponent indicates that no e in [2, phi) is coprime to phi.
	ErrNoCoprimeExponent = errors.New("no public exponent coprime to totient")

	// ErrInvalidKey indicates a key pair that fails validation.
	ErrInvalidKey = errors.New("invalid key pair")

	// ErrAttemptsExhausted indicates that key generation gave up after the
	// configured number of draws.
	ErrAttemptsExhausted = errors.New("key generation attempts exhausted")

	// ErrMessageOutOfRange indicates a message or ciphertext outside [0, n).
	ErrMessageOutOfRange = errors.New("value out of range [0, n)")
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")
