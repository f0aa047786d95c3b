package keys_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/big"
	mrand "math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/keys"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

func mustPrime(t *testing.T, v int64) prime.Prime {
	t.Helper()
	p, err := prime.FromInt64(v)
	require.NoError(t, err)
	return p
}

func seeded(seed byte) *mrand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return mrand.NewChaCha8(s)
}

func TestDeriveElevenFive(t *testing.T) {
	kp, err := keys.Derive(mustPrime(t, 11), mustPrime(t, 5))
	require.NoError(t, err)

	assert.Equal(t, "40", kp.Totient().String())
	assert.Equal(t, "3", kp.Public.E().String())
	assert.Equal(t, "55", kp.Public.N().String())
	assert.Equal(t, "27", kp.Private.Exponent().String())
	assert.Equal(t, "55", kp.Private.N().String())

	p, q := kp.Primes()
	assert.Equal(t, "11", p.String())
	assert.Equal(t, "5", q.String())
	require.NoError(t, kp.Validate())
}

func TestDeriveAllSmallPairs(t *testing.T) {
	ps := prime.Below(200)
	for _, a := range ps {
		for _, b := range ps {
			if a == b {
				continue
			}
			kp, err := keys.Derive(mustPrime(t, int64(a)), mustPrime(t, int64(b)))
			if (a == 2 && b == 3) || (a == 3 && b == 2) {
				assert.ErrorIs(t, err, rsademo.ErrNoCoprimeExponent)
				continue
			}
			require.NoError(t, err, "p=%d q=%d", a, b)

			e, d, phi := kp.Public.E(), kp.Private.Exponent(), kp.Totient()
			assert.NotEqual(t, int64(2), e.Int64(), "p=%d q=%d", a, b)
			ed := new(big.Int).Mul(e, d)
			assert.Equal(t, int64(1), ed.Mod(ed, phi).Int64(), "p=%d q=%d", a, b)
			assert.Equal(t, int64(a*b), kp.Public.N().Int64())
			require.NoError(t, kp.Validate(), "p=%d q=%d", a, b)
		}
	}
}

func TestDeriveErrors(t *testing.T) {
	_, err := keys.Derive(mustPrime(t, 7), mustPrime(t, 7))
	assert.ErrorIs(t, err, rsademo.ErrEqualPrimes)

	_, err = keys.Derive(prime.Prime{}, mustPrime(t, 7))
	assert.ErrorIs(t, err, rsademo.ErrNotPrime)
}

func TestPublicExponent(t *testing.T) {
	tests := []struct {
		phi  int64
		want int64
	}{
		{40, 3},
		{4, 3},
		{6, 5},
		{12, 5},
		{30, 7},
		{60, 7},
	}
	for _, tt := range tests {
		e, err := keys.PublicExponent(big.NewInt(tt.phi))
		require.NoError(t, err)
		assert.Equal(t, tt.want, e.Int64(), "phi=%d", tt.phi)
	}

	_, err := keys.PublicExponent(big.NewInt(2))
	assert.ErrorIs(t, err, rsademo.ErrNoCoprimeExponent)
}

func TestTotient(t *testing.T) {
	assert.Equal(t, int64(40), keys.Totient(mustPrime(t, 11), mustPrime(t, 5)).Int64())
	assert.Equal(t, int64(1), keys.Totient(mustPrime(t, 2), mustPrime(t, 2)).Int64())
}

func TestAccessorsReturnCopies(t *testing.T) {
	kp, err := keys.Derive(mustPrime(t, 11), mustPrime(t, 5))
	require.NoError(t, err)

	kp.Public.N().SetInt64(1)
	kp.Public.E().SetInt64(1)
	kp.Private.Exponent().SetInt64(1)
	kp.Totient().SetInt64(1)

	pub := kp.Private.Public()
	pub.N().SetInt64(2)
	assert.Equal(t, "n=55, e=3", pub.String())
	require.NoError(t, kp.Validate())
}

func TestGenerate(t *testing.T) {
	for _, kind := range []prime.Kind{prime.KindSieve, prime.KindProbable} {
		t.Run(string(kind), func(t *testing.T) {
			src, err := prime.NewSource(kind, seeded(7), 0)
			require.NoError(t, err)
			for i := 0; i < 20; i++ {
				kp, err := keys.Generate(context.Background(), src, big.NewInt(1200000))
				require.NoError(t, err)
				require.NoError(t, kp.Validate())

				p, q := kp.Primes()
				assert.Less(t, p.Int().Int64(), int64(1200000))
				assert.Less(t, q.Int().Int64(), int64(1200000))
				assert.False(t, p.Equal(q))
			}
		})
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	src := prime.NewSieveSource(seeded(1))

	_, err := keys.Generate(context.Background(), src, big.NewInt(3), keys.WithMaxAttempts(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, rsademo.ErrAttemptsExhausted)
	assert.ErrorIs(t, err, rsademo.ErrEqualPrimes)
	assert.Contains(t, err.Error(), "after 4 attempts")

	// Below 4 every pair is either equal or {2, 3}.
	_, err = keys.Generate(context.Background(), src, big.NewInt(4))
	assert.ErrorIs(t, err, rsademo.ErrAttemptsExhausted)
}

func TestGenerateStopsOnSourceError(t *testing.T) {
	src := prime.NewSieveSource(seeded(1))
	_, err := keys.Generate(context.Background(), src, big.NewInt(2))
	assert.ErrorIs(t, err, rsademo.ErrNoPrimeFound)
	assert.NotErrorIs(t, err, rsademo.ErrAttemptsExhausted)

	_, err = keys.Generate(context.Background(), nil, big.NewInt(100))
	assert.ErrorIs(t, err, rsademo.ErrInvalidConfig)
}

func TestGenerateHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := keys.Generate(ctx, prime.NewSieveSource(seeded(1)), big.NewInt(100))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateLogsWithoutPrivateExponent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.NewZap(zap.New(core))

	kp, err := keys.Generate(context.Background(), prime.NewSieveSource(seeded(3)), big.NewInt(1000),
		keys.WithLogger(log))
	require.NoError(t, err)

	derived := logs.FilterMessage("key pair derived").All()
	require.Len(t, derived, 1)
	fields := derived[0].ContextMap()
	assert.Equal(t, "1000", fields["bound"])
	assert.Equal(t, kp.Public.N().String(), fields["n"])
	assert.Equal(t, map[string]any{
		"n": kp.Public.N().String(),
		"d": logging.Placeholder(),
	}, fields["private"])
}

func TestGenerateValidatesBeforeReturning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.NewZap(zap.New(core))

	for i := 0; i < 5; i++ {
		kp, err := keys.Generate(context.Background(), prime.NewSieveSource(seeded(byte(10+i))), big.NewInt(5000),
			keys.WithLogger(log))
		require.NoError(t, err)

		validated := logs.FilterMessage("key pair validated").All()
		require.Len(t, validated, i+1)
		assert.Equal(t, kp.Public.N().String(), validated[i].ContextMap()["n"])
	}
	assert.Equal(t, logs.FilterMessage("key pair derived").Len(), logs.FilterMessage("key pair validated").Len())
}

func TestPrivateKeyRedaction(t *testing.T) {
	kp, err := keys.Derive(mustPrime(t, 11), mustPrime(t, 5))
	require.NoError(t, err)
	priv := kp.Private

	for _, verb := range []string{"%v", "%+v", "%#v", "%s", "%d", "%x", "%q"} {
		out := fmt.Sprintf(verb, priv)
		assert.Equal(t, "n=55, d=[redacted]", out, "verb %s", verb)
	}

	var buf bytes.Buffer
	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: dropTime}))
	logger.Info("derived", "key", priv)
	assert.Contains(t, buf.String(), "key.d=[redacted]")
	assert.Contains(t, buf.String(), "key.n=55")
	assert.NotContains(t, buf.String(), "27")

	core, logs := observer.New(zapcore.InfoLevel)
	zap.New(core).Info("derived", zap.Object("key", priv))
	assert.Equal(t, map[string]any{"n": "55", "d": "[redacted]"}, logs.All()[0].ContextMap()["key"])
}

func TestZeroize(t *testing.T) {
	kp, err := keys.Derive(mustPrime(t, 11), mustPrime(t, 5))
	require.NoError(t, err)

	kp.Zeroize()
	assert.Zero(t, kp.Private.Exponent().Sign())
	assert.Zero(t, kp.Totient().Sign())
	assert.ErrorIs(t, kp.Validate(), rsademo.ErrInvalidKey)
	assert.True(t, strings.HasPrefix(kp.Private.String(), "n=55"))
}

func TestValidateNil(t *testing.T) {
	var kp *keys.KeyPair
	assert.ErrorIs(t, kp.Validate(), rsademo.ErrInvalidKey)
}
