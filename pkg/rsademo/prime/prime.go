package prime

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

// DefaultRounds is the number of Miller–Rabin rounds used when validating
// primes. big.Int.ProbablyPrime is exact below 2^64 regardless of rounds.
const DefaultRounds = 20

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Prime is an immutable prime number. The zero value is not a prime and is
// rejected by key derivation.
type Prime struct {
	v *big.Int
}

// New validates v and wraps a copy of it. Composite values, values below 2
// and nil fail with ErrNotPrime.
func New(v *big.Int) (Prime, error) {
	if v == nil || v.Cmp(two) < 0 || !v.ProbablyPrime(DefaultRounds) {
		return Prime{}, errors.Wrapf(rsademo.ErrNotPrime, "%v", v)
	}
	return Prime{v: new(big.Int).Set(v)}, nil
}

// FromInt64 is New for small values.
func FromInt64(v int64) (Prime, error) {
	return New(big.NewInt(v))
}

// Int returns a copy of the prime's value.
func (p Prime) Int() *big.Int {
	if p.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(p.v)
}

// IsZero reports whether p is the zero value.
func (p Prime) IsZero() bool {
	return p.v == nil
}

// Equal reports whether p and q hold the same value.
func (p Prime) Equal(q Prime) bool {
	if p.v == nil || q.v == nil {
		return p.v == nil && q.v == nil
	}
	return p.v.Cmp(q.v) == 0
}

// String returns the decimal representation.
func (p Prime) String() string {
	if p.v == nil {
		return "<nil>"
	}
	return p.v.String()
}
