package modarith

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

var one = big.NewInt(1)

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ModInverse returns the unique u in [1, m) with a*u mod m == 1.
//
// It fails with ErrNoInverseExists when gcd(a, m) != 1 (which includes m == 1,
// where [1, m) is empty) and with ErrZeroModulus or ErrInvalidModulus when m is
// not positive. Negative a is reduced modulo m first.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	if m.Cmp(one) == 0 {
		return nil, errors.Wrap(rsademo.ErrNoInverseExists, "modulus 1 has no units")
	}

	// Invariant: oldS*a ≡ oldR (mod m) and s*a ≡ r (mod m).
	oldR := new(big.Int).Mod(a, m)
	r := new(big.Int).Set(m)
	oldS := big.NewInt(1)
	s := big.NewInt(0)
	q := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
	}

	if oldR.Cmp(one) != 0 {
		return nil, errors.Wrapf(rsademo.ErrNoInverseExists, "gcd(%s, %s) = %s", a, m, oldR)
	}
	return oldS.Mod(oldS, m), nil
}

// ModPow returns base^exponent mod modulus.
//
// The exponent is consumed bit by bit from the least significant end: the
// running base is squared every step and multiplied into the result when the
// bit is set. The base is reduced modulo modulus first, so any integer base is
// accepted. exponent == 0 yields 1, modulus == 1 yields 0.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if err := checkModulus(modulus); err != nil {
		return nil, err
	}
	if exponent.Sign() < 0 {
		return nil, errors.Wrapf(rsademo.ErrNegativeExponent, "exponent %s", exponent)
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	for e.Sign() != 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result, nil
}

// ModPowChecked is ModPow with the preconditions of an RSA block operation:
// modulus != 0, 0 <= base < modulus and gcd(base, modulus) == 1. Violations
// return ErrZeroModulus, ErrBaseExceedsModulus and ErrNotCoprime, in that
// order of precedence.
//
// keys.Generate validates every pair it returns with this function; the
// encryption path uses ModPow.
func ModPowChecked(base, exponent, modulus *big.Int) (*big.Int, error) {
	if err := checkModulus(modulus); err != nil {
		return nil, err
	}
	if base.Sign() < 0 || base.Cmp(modulus) >= 0 {
		return nil, errors.Wrapf(rsademo.ErrBaseExceedsModulus, "base %s, modulus %s", base, modulus)
	}
	if !Coprime(base, modulus) {
		return nil, errors.Wrapf(rsademo.ErrNotCoprime, "base %s, modulus %s", base, modulus)
	}
	return ModPow(base, exponent, modulus)
}

func checkModulus(m *big.Int) error {
	switch m.Sign() {
	case 0:
		return errors.WithStack(rsademo.ErrZeroModulus)
	case -1:
		return errors.Wrapf(rsademo.ErrInvalidModulus, "modulus %s", m)
	}
	return nil
}
