// Package prime selects random primes below a bound.
//
// Callers depend on the single-method Source capability:
//
//	type Source interface {
//	    NextPrime(bound *big.Int) (Prime, error)
//	}
//
// Both implementations draw a uniformly random candidate c in [0, bound) and
// return the first prime at or after c that is still below bound. When c lies
// above the largest prime below bound, that largest prime is returned, so it
// is drawn more often than the others. Both implementations consume
// randomness identically, so with the same reader they return the same prime.
//
//   - SieveSource enumerates the primes below bound with the Sieve of
//     Eratosthenes. Bounds are limited to MaxSieveBound.
//   - ProbableSource tests candidates with Miller–Rabin and works for any
//     bit width.
//
// Two calls may return the same prime. Rejecting p == q is the key
// derivation's job.
package prime
