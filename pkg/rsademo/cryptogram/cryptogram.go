package cryptogram

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/keys"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/modarith"
)

// EncryptRaw returns message^e mod n.
func EncryptRaw(message, e, n *big.Int) (*big.Int, error) {
	c, err := modarith.ModPow(message, e, n)
	if err != nil {
		return nil, errors.WithMessage(err, "encrypt")
	}
	return c, nil
}

// DecryptRaw returns ciphertext^d mod n.
func DecryptRaw(ciphertext, d, n *big.Int) (*big.Int, error) {
	m, err := modarith.ModPow(ciphertext, d, n)
	if err != nil {
		return nil, errors.WithMessage(err, "decrypt")
	}
	return m, nil
}

// Encrypt encrypts m under pub. m must lie in [0, n).
func Encrypt(pub *keys.PublicKey, m *big.Int) (*big.Int, error) {
	if pub == nil {
		return nil, errors.Wrap(rsademo.ErrInvalidKey, "nil public key")
	}
	n := pub.N()
	if err := checkRange(m, n); err != nil {
		return nil, errors.WithMessage(err, "encrypt")
	}
	return EncryptRaw(m, pub.E(), n)
}

// Decrypt decrypts c with priv. c must lie in [0, n).
func Decrypt(priv *keys.PrivateKey, c *big.Int) (*big.Int, error) {
	if priv == nil {
		return nil, errors.Wrap(rsademo.ErrInvalidKey, "nil private key")
	}
	n := priv.N()
	if err := checkRange(c, n); err != nil {
		return nil, errors.WithMessage(err, "decrypt")
	}
	d := priv.Exponent()
	defer rsademo.ZeroizeInt(d)
	return DecryptRaw(c, d, n)
}

func checkRange(v, n *big.Int) error {
	if v == nil || v.Sign() < 0 || v.Cmp(n) >= 0 {
		return errors.Wrapf(rsademo.ErrMessageOutOfRange, "value %v not in [0, %s)", v, n)
	}
	return nil
}
