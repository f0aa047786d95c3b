package keys

import (
	"context"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

// DefaultMaxAttempts bounds the number of prime pairs Generate draws.
const DefaultMaxAttempts = 16

type options struct {
	maxAttempts int
	logger      logging.Logger
}

// Option configures Generate.
type Option func(*options)

// WithMaxAttempts sets how many prime pairs Generate may draw. Values below
// one are ignored.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxAttempts = n
		}
	}
}

// WithLogger routes Generate's diagnostics to l. A nil l is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Generate draws two primes below bound from src and derives a key pair.
//
// A draw that yields p == q or a totient without a coprime exponent is
// retried with fresh primes. Other errors are returned immediately. After
// the configured number of attempts the error wraps both
// ErrAttemptsExhausted and the last retryable failure. ctx is checked before
// every draw.
//
// The returned pair has passed Validate. A pair that fails it is a bug in
// derivation, so its ErrInvalidKey is returned instead of retrying.
func Generate(ctx context.Context, src prime.Source, bound *big.Int, opts ...Option) (*KeyPair, error) {
	if src == nil {
		return nil, errors.Wrap(rsademo.ErrInvalidConfig, "nil prime source")
	}
	o := options{maxAttempts: DefaultMaxAttempts, logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With("bound", bound.String())

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := src.NextPrime(bound)
		if err != nil {
			return nil, errors.WithMessage(err, "draw p")
		}
		q, err := src.NextPrime(bound)
		if err != nil {
			return nil, errors.WithMessage(err, "draw q")
		}

		kp, err := Derive(p, q)
		if err == nil {
			log.Debug(ctx, "key pair derived",
				"attempt", attempt,
				"n", kp.Public.n.String(),
				"e", kp.Public.e.String(),
				"private", kp.Private,
			)
			if err := kp.Validate(); err != nil {
				kp.Zeroize()
				return nil, err
			}
			log.Debug(ctx, "key pair validated", "attempt", attempt, "n", kp.Public.n.String())
			return kp, nil
		}
		if !errors.Is(err, rsademo.ErrEqualPrimes) && !errors.Is(err, rsademo.ErrNoCoprimeExponent) {
			return nil, err
		}
		log.Warn(ctx, "discarding prime pair", "attempt", attempt, "p", p.String(), "q", q.String(), "reason", err.Error())
		lastErr = err
	}
	// pkg/errors wraps a single cause; both sentinels must stay matchable.
	return nil, fmt.Errorf("%w after %d attempts: %w", rsademo.ErrAttemptsExhausted, o.maxAttempts, lastErr)
}
