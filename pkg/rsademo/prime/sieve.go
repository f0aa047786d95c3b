package prime

import (
	"io"
	"math/big"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

// MaxSieveBound caps the sieve at 64 MiB of flags.
const MaxSieveBound = 1 << 26

// SieveSource selects primes from an enumeration built by the Sieve of
// Eratosthenes. The enumeration for the most recent bound is cached, so
// repeated draws below the same bound sieve only once.
type SieveSource struct {
	rand io.Reader

	mu     sync.Mutex
	limit  int
	primes []int
}

// NewSieveSource returns a SieveSource reading from r, or crypto/rand.Reader
// when r is nil.
func NewSieveSource(r io.Reader) *SieveSource {
	return &SieveSource{rand: readerOrDefault(r)}
}

// NextPrime implements Source.
func (s *SieveSource) NextPrime(bound *big.Int) (Prime, error) {
	if err := checkBound(bound); err != nil {
		return Prime{}, err
	}
	if !bound.IsInt64() || bound.Int64() > MaxSieveBound {
		return Prime{}, errors.Wrapf(rsademo.ErrBoundTooLarge, "bound %s exceeds %d", bound, MaxSieveBound)
	}

	primes := s.below(int(bound.Int64()))
	if len(primes) == 0 {
		return Prime{}, errors.Wrapf(rsademo.ErrNoPrimeFound, "bound %s", bound)
	}

	c, err := candidate(s.rand, bound)
	if err != nil {
		return Prime{}, err
	}
	idx, _ := slices.BinarySearch(primes, int(c.Int64()))
	if idx == len(primes) {
		idx = len(primes) - 1
	}
	return Prime{v: big.NewInt(int64(primes[idx]))}, nil
}

// below returns the cached primes under limit, sieving when limit changed.
// Callers must not modify the result.
func (s *SieveSource) below(limit int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.primes == nil || s.limit != limit {
		s.limit = limit
		s.primes = Below(limit)
	}
	return s.primes
}

// Below returns the primes in [2, limit) in ascending order.
func Below(limit int) []int {
	if limit <= 2 {
		return nil
	}
	composite := make([]bool, limit)
	for i := 2; i*i < limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	var primes []int
	for i := 2; i < limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
