package prime

import (
	"math/big"
	mrand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSieveSourceCachesPrimes(t *testing.T) {
	var seed [32]byte
	src := NewSieveSource(mrand.NewChaCha8(seed))

	_, err := src.NextPrime(big.NewInt(1000))
	require.NoError(t, err)
	first := src.primes
	require.Len(t, first, 168)

	for i := 0; i < 10; i++ {
		_, err := src.NextPrime(big.NewInt(1000))
		require.NoError(t, err)
	}
	assert.Same(t, &first[0], &src.primes[0], "sieve rebuilt for an unchanged bound")

	_, err = src.NextPrime(big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, 100, src.limit)
	assert.Len(t, src.primes, 25)
}
