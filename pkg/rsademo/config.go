package rsademo

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
)

// EnvPrefix is prepended to environment variables read by LoadConfig, e.g.
// RSADEMO_BOUND or RSADEMO_LOG_LEVEL.
const EnvPrefix = "RSADEMO"

// Config carries the knobs of a demo run. Integers that may exceed a machine
// word are kept as decimal strings.
type Config struct {
	// Bound is the exclusive upper limit for prime candidates.
	Bound string `mapstructure:"bound"`

	// Source names the prime source: "sieve" or "probable".
	Source string `mapstructure:"source"`

	// MillerRabinRounds is passed to the probable source.
	MillerRabinRounds int `mapstructure:"miller_rabin_rounds"`

	// MaxAttempts bounds how many prime pairs key generation draws.
	MaxAttempts int `mapstructure:"max_attempts"`

	// Message is the plaintext integer. MessageText is only displayed next
	// to it; no text encoding is performed.
	Message     string `mapstructure:"message"`
	MessageText string `mapstructure:"message_text"`

	// RevealPrivate prints the private exponent in the demo report.
	RevealPrivate bool `mapstructure:"reveal_private"`

	// Format selects the report renderer: table, markdown, csv or plain.
	Format string `mapstructure:"format"`

	Log logging.Config `mapstructure:"log"`
}

// DefaultConfig mirrors the classic demo: primes below 1200000, message 2.
func DefaultConfig() Config {
	return Config{
		Bound:             "1200000",
		Source:            "sieve",
		MillerRabinRounds: 20,
		MaxAttempts:       16,
		Message:           "2",
		MessageText:       "R",
		RevealPrivate:     true,
		Format:            "table",
		Log:               logging.DefaultConfig(),
	}
}

// SetDefaults registers DefaultConfig on v so that file, environment and flag
// values layer over it.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("bound", d.Bound)
	v.SetDefault("source", d.Source)
	v.SetDefault("miller_rabin_rounds", d.MillerRabinRounds)
	v.SetDefault("max_attempts", d.MaxAttempts)
	v.SetDefault("message", d.Message)
	v.SetDefault("message_text", d.MessageText)
	v.SetDefault("reveal_private", d.RevealPrivate)
	v.SetDefault("format", d.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
}

// LoadConfig resolves the configuration from v. Precedence, lowest first:
// defaults, the file at path (toml, yaml or json by extension), RSADEMO_*
// environment variables, then any flags already bound on v. A nil v uses a
// fresh viper instance.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	bound, err := c.BoundInt()
	if err != nil {
		return err
	}
	if bound.Cmp(big.NewInt(2)) <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "bound %s: must be greater than 2", c.Bound)
	}
	switch c.Source {
	case "sieve", "probable":
	default:
		return errors.Wrapf(ErrInvalidConfig, "source %q: want sieve or probable", c.Source)
	}
	if c.MillerRabinRounds < 0 {
		return errors.Wrapf(ErrInvalidConfig, "miller_rabin_rounds %d: must not be negative", c.MillerRabinRounds)
	}
	if c.MaxAttempts < 1 {
		return errors.Wrapf(ErrInvalidConfig, "max_attempts %d: must be at least 1", c.MaxAttempts)
	}
	msg, err := c.MessageInt()
	if err != nil {
		return err
	}
	if msg.Sign() < 0 {
		return errors.Wrapf(ErrInvalidConfig, "message %s: must not be negative", c.Message)
	}
	switch c.Format {
	case "table", "markdown", "csv", "plain":
	default:
		return errors.Wrapf(ErrInvalidConfig, "format %q: want table, markdown, csv or plain", c.Format)
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// BoundInt parses Bound as a decimal integer.
func (c Config) BoundInt() (*big.Int, error) {
	return parseDecimal("bound", c.Bound)
}

// MessageInt parses Message as a decimal integer.
func (c Config) MessageInt() (*big.Int, error) {
	return parseDecimal("message", c.Message)
}

func parseDecimal(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s %q: not a decimal integer", field, s)
	}
	return v, nil
}
