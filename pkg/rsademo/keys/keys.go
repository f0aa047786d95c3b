package keys

import (
	"fmt"
	"log/slog"
	"math/big"

	"go.uber.org/zap/zapcore"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

// PublicKey is the pair (n, e).
type PublicKey struct {
	n *big.Int
	e *big.Int
}

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// E returns a copy of the public exponent.
func (k *PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// String returns "n=<n>, e=<e>".
func (k *PublicKey) String() string {
	return fmt.Sprintf("n=%s, e=%s", k.n, k.e)
}

// PrivateKey holds the private exponent d with its public half.
type PrivateKey struct {
	pub PublicKey
	d   *big.Int
}

// Public returns the matching public key.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{n: k.pub.N(), e: k.pub.E()}
}

// N returns a copy of the modulus.
func (k *PrivateKey) N() *big.Int { return k.pub.N() }

// Exponent returns a copy of the private exponent d. It is the only accessor
// for d; the result must not be logged.
func (k *PrivateKey) Exponent() *big.Int { return new(big.Int).Set(k.d) }

// Zeroize wipes d. The key is unusable afterwards.
func (k *PrivateKey) Zeroize() {
	rsademo.ZeroizeInt(k.d)
}

// String renders the modulus and the redaction placeholder.
func (k *PrivateKey) String() string {
	return fmt.Sprintf("n=%s, d=%s", k.pub.n, logging.Placeholder())
}

// Format applies String to every verb, including %x and %#v.
func (k *PrivateKey) Format(f fmt.State, _ rune) {
	fmt.Fprint(f, k.String())
}

// LogValue implements slog.LogValuer.
func (k *PrivateKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("n", k.pub.n.String()),
		logging.Redacted("d"),
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (k *PrivateKey) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("n", k.pub.n.String())
	enc.AddString("d", logging.Placeholder())
	return nil
}

// KeyPair is the full output of Derive. All accessors return copies.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey

	p, q    prime.Prime
	totient *big.Int
}

// Primes returns the primes the pair was derived from.
func (kp *KeyPair) Primes() (p, q prime.Prime) {
	return kp.p, kp.q
}

// Totient returns a copy of phi(n) = (p-1)(q-1).
func (kp *KeyPair) Totient() *big.Int {
	return new(big.Int).Set(kp.totient)
}

// Zeroize wipes the private exponent and the totient.
func (kp *KeyPair) Zeroize() {
	kp.Private.Zeroize()
	rsademo.ZeroizeInt(kp.totient)
}
