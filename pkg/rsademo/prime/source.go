package prime

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

// Source produces a random prime below a bound.
type Source interface {
	NextPrime(bound *big.Int) (Prime, error)
}

// Kind names a Source implementation.
type Kind string

const (
	KindSieve    Kind = "sieve"
	KindProbable Kind = "probable"
)

// NewSource returns the Source named by kind reading randomness from r.
// A nil r uses crypto/rand.Reader. rounds only applies to KindProbable.
func NewSource(kind Kind, r io.Reader, rounds int) (Source, error) {
	switch kind {
	case KindSieve:
		return NewSieveSource(r), nil
	case KindProbable:
		return NewProbableSource(r, rounds), nil
	default:
		return nil, errors.Wrapf(rsademo.ErrInvalidConfig, "unknown prime source %q", kind)
	}
}

// candidate draws c uniformly from [0, bound) by rejection sampling: read
// just enough bytes for bound-1, mask the excess top bits, retry while the
// value is out of range. bound must exceed 2.
func candidate(r io.Reader, bound *big.Int) (*big.Int, error) {
	limit := new(big.Int).Sub(bound, one)
	bitLen := limit.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	topBits := uint(bitLen % 8)
	if topBits == 0 {
		topBits = 8
	}
	c := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrap(err, "draw prime candidate")
		}
		buf[0] &= byte(1<<topBits - 1)
		c.SetBytes(buf)
		if c.Cmp(bound) < 0 {
			return c, nil
		}
	}
}

func checkBound(bound *big.Int) error {
	if bound == nil || bound.Cmp(two) <= 0 {
		return errors.Wrapf(rsademo.ErrNoPrimeFound, "bound %v", bound)
	}
	return nil
}

func readerOrDefault(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}
