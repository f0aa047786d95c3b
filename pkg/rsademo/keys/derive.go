package keys

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Totient returns (p-1)(q-1).
func Totient(p, q prime.Prime) *big.Int {
	pm1 := new(big.Int).Sub(p.Int(), one)
	qm1 := new(big.Int).Sub(q.Int(), one)
	return pm1.Mul(pm1, qm1)
}

// PublicExponent returns the smallest e in [2, phi) with gcd(e, phi) == 1,
// searching linearly upward from 2.
func PublicExponent(phi *big.Int) (*big.Int, error) {
	for e := big.NewInt(2); e.Cmp(phi) < 0; e.Add(e, one) {
		if modarith.Coprime(e, phi) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(rsademo.ErrNoCoprimeExponent, "phi %s", phi)
}

// Derive builds the key pair for the primes p and q.
//
// It fails with ErrNotPrime for a zero Prime, ErrEqualPrimes when p == q and
// ErrNoCoprimeExponent when phi leaves no room for 1 < e < phi, which only
// happens for the smallest primes. ErrNoInverseExists cannot occur for an e
// found by PublicExponent but is still propagated.
func Derive(p, q prime.Prime) (*KeyPair, error) {
	if p.IsZero() || q.IsZero() {
		return nil, errors.Wrap(rsademo.ErrNotPrime, "zero prime")
	}
	if p.Equal(q) {
		return nil, errors.Wrapf(rsademo.ErrEqualPrimes, "p = q = %s", p)
	}

	phi := Totient(p, q)
	e, err := PublicExponent(phi)
	if err != nil {
		return nil, errors.WithMessagef(err, "derive from p=%s q=%s", p, q)
	}
	n := new(big.Int).Mul(p.Int(), q.Int())

	d, err := modarith.ModInverse(e, phi)
	if err != nil {
		return nil, errors.WithMessage(err, "private exponent")
	}

	return &KeyPair{
		Public: &PublicKey{n: n, e: e},
		Private: &PrivateKey{
			pub: PublicKey{n: new(big.Int).Set(n), e: new(big.Int).Set(e)},
			d:   d,
		},
		p:       p,
		q:       q,
		totient: phi,
	}, nil
}

// Validate re-checks the key invariants: n = p*q, 1 < e < phi,
// gcd(e, phi) = 1, d in [1, phi) and e*d ≡ 1 (mod phi). It then encrypts and
// decrypts a probe value with modarith.ModPowChecked. Failures wrap
// ErrInvalidKey.
func (kp *KeyPair) Validate() error {
	if kp == nil || kp.Public == nil || kp.Private == nil || kp.totient == nil {
		return errors.Wrap(rsademo.ErrInvalidKey, "incomplete key pair")
	}
	n, e, d, phi := kp.Public.n, kp.Public.e, kp.Private.d, kp.totient

	if new(big.Int).Mul(kp.p.Int(), kp.q.Int()).Cmp(n) != 0 {
		return errors.Wrap(rsademo.ErrInvalidKey, "modulus is not p*q")
	}
	if kp.Private.pub.n.Cmp(n) != 0 || kp.Private.pub.e.Cmp(e) != 0 {
		return errors.Wrap(rsademo.ErrInvalidKey, "public and private halves disagree")
	}
	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return errors.Wrapf(rsademo.ErrInvalidKey, "e=%s outside (1, phi)", e)
	}
	if !modarith.Coprime(e, phi) {
		return errors.Wrapf(rsademo.ErrInvalidKey, "gcd(e=%s, phi) != 1", e)
	}
	if d.Sign() <= 0 || d.Cmp(phi) >= 0 {
		return errors.Wrap(rsademo.ErrInvalidKey, "d outside [1, phi)")
	}
	ed := new(big.Int).Mul(e, d)
	if ed.Mod(ed, phi).Cmp(one) != 0 {
		return errors.Wrap(rsademo.ErrInvalidKey, "e*d mod phi != 1")
	}

	probe := smallestCoprime(n)
	if probe == nil {
		return nil
	}
	c, err := modarith.ModPowChecked(probe, e, n)
	if err != nil {
		return errors.Wrapf(rsademo.ErrInvalidKey, "encrypt probe: %v", err)
	}
	m, err := modarith.ModPowChecked(c, d, n)
	if err != nil {
		return errors.Wrapf(rsademo.ErrInvalidKey, "decrypt probe: %v", err)
	}
	if m.Cmp(probe) != 0 {
		return errors.Wrapf(rsademo.ErrInvalidKey, "probe %s did not round-trip", probe)
	}
	return nil
}

// smallestCoprime returns the smallest x in [2, n) coprime to n, or nil.
func smallestCoprime(n *big.Int) *big.Int {
	for x := new(big.Int).Set(two); x.Cmp(n) < 0; x.Add(x, one) {
		if modarith.Coprime(x, n) {
			return x
		}
	}
	return nil
}
