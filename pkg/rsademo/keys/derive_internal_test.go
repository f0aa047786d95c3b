package keys

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

func derive(t *testing.T, p, q int64) *KeyPair {
	t.Helper()
	pp, err := prime.FromInt64(p)
	require.NoError(t, err)
	qq, err := prime.FromInt64(q)
	require.NoError(t, err)
	kp, err := Derive(pp, qq)
	require.NoError(t, err)
	return kp
}

func TestValidateDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(kp *KeyPair)
	}{
		{"d off by one", func(kp *KeyPair) { kp.Private.d.Add(kp.Private.d, big.NewInt(1)) }},
		{"e equals phi", func(kp *KeyPair) { kp.Public.e.Set(kp.totient) }},
		{"e shares factor with phi", func(kp *KeyPair) { kp.Public.e.SetInt64(2) }},
		{"n not p*q", func(kp *KeyPair) { kp.Public.n.SetInt64(57) }},
		{"halves disagree", func(kp *KeyPair) { kp.Private.pub.n.SetInt64(77) }},
		{"d above phi", func(kp *KeyPair) { kp.Private.d.Add(kp.Private.d, kp.totient) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp := derive(t, 11, 5)
			tt.tamper(kp)
			require.ErrorIs(t, kp.Validate(), rsademo.ErrInvalidKey)
		})
	}
}

func TestSmallestCoprime(t *testing.T) {
	require.Equal(t, int64(3), smallestCoprime(big.NewInt(10)).Int64())
	require.Equal(t, int64(2), smallestCoprime(big.NewInt(55)).Int64())
	require.Nil(t, smallestCoprime(big.NewInt(2)))
}
