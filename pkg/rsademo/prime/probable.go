package prime

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

// ProbableSource scans upward from a random candidate using
// big.Int.ProbablyPrime. It handles bounds of any size.
type ProbableSource struct {
	rand   io.Reader
	rounds int
}

// NewProbableSource returns a ProbableSource reading from r, or
// crypto/rand.Reader when r is nil. rounds <= 0 selects DefaultRounds.
func NewProbableSource(r io.Reader, rounds int) *ProbableSource {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	return &ProbableSource{rand: readerOrDefault(r), rounds: rounds}
}

// NextPrime implements Source.
func (s *ProbableSource) NextPrime(bound *big.Int) (Prime, error) {
	if err := checkBound(bound); err != nil {
		return Prime{}, err
	}
	c, err := candidate(s.rand, bound)
	if err != nil {
		return Prime{}, err
	}
	if p := s.scan(c, bound); p != nil {
		return Prime{v: p}, nil
	}
	if p := s.scanDown(c); p != nil {
		return Prime{v: p}, nil
	}
	return Prime{}, errors.Wrapf(rsademo.ErrNoPrimeFound, "bound %s", bound)
}

// scan returns the first probable prime in [from, to), or nil.
func (s *ProbableSource) scan(from, to *big.Int) *big.Int {
	x := new(big.Int).Set(from)
	if x.Cmp(two) < 0 {
		x.Set(two)
	}
	for ; x.Cmp(to) < 0; x.Add(x, one) {
		if x.ProbablyPrime(s.rounds) {
			return x
		}
	}
	return nil
}

// scanDown returns the largest probable prime in [2, below), or nil.
func (s *ProbableSource) scanDown(below *big.Int) *big.Int {
	for x := new(big.Int).Sub(below, one); x.Cmp(two) >= 0; x.Sub(x, one) {
		if x.ProbablyPrime(s.rounds) {
			return x
		}
	}
	return nil
}
