// Package cli implements the rsademo command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
)

const (
	Name        = "rsademo"
	Description = "Toy RSA engine: derive a key pair and round-trip a message"
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      rsademo.Config
	log      logging.Logger
	closeLog func() error
	rand     io.Reader
}

// Option configures NewRootCommand.
type Option func(*app)

// WithRand sets the randomness used to draw primes. The default is
// crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(a *app) { a.rand = r }
}

// Execute runs the root command against os.Args and exits 1 on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\x1b[%dm[err]\x1b[0m %v\n", 41, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Running it without a subcommand
// performs the full demo.
func NewRootCommand(opts ...Option) *cobra.Command {
	return newApp(opts...).rootCommand()
}

func newApp(opts ...Option) *app {
	a := &app{v: viper.New(), log: logging.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               Name,
		Short:             Description,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	d := rsademo.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (toml, yaml or json)")
	pf.String("bound", d.Bound, "exclusive upper bound for primes")
	pf.String("source", d.Source, "prime source: sieve or probable")
	pf.Int("miller-rabin-rounds", d.MillerRabinRounds, "Miller-Rabin rounds for the probable source")
	pf.Int("max-attempts", d.MaxAttempts, "prime pairs to draw before giving up")
	pf.String("message", d.Message, "plaintext integer")
	pf.String("message-text", d.MessageText, "label shown next to the plaintext")
	pf.Bool("reveal-private", d.RevealPrivate, "print the private exponent")
	pf.String("format", d.Format, "output format: table, markdown, csv or plain")
	pf.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	pf.String("log-format", d.Log.Format, "log encoding: console or json")
	pf.String("log-file", d.Log.File, "write logs to a rotating file instead of stderr")

	for key, flag := range map[string]string{
		"bound":               "bound",
		"source":              "source",
		"miller_rabin_rounds": "miller-rabin-rounds",
		"max_attempts":        "max-attempts",
		"message":             "message",
		"message_text":        "message-text",
		"reveal_private":      "reveal-private",
		"format":              "format",
		"log.level":           "log-level",
		"log.format":          "log-format",
		"log.file":            "log-file",
	} {
		// Lookup cannot fail for the flags declared above.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.keygenCommand(),
		a.encryptCommand(),
		a.decryptCommand(),
		a.versionCommand(),
		a.configCommand(),
	)

	// cobra skips post-run hooks when RunE fails, so each command closes
	// the log itself.
	for _, c := range append([]*cobra.Command{root}, root.Commands()...) {
		if c.RunE != nil {
			c.RunE = a.closingLog(c.RunE)
		}
	}
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := rsademo.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	zl, closeLog, err := logging.BuildZap(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.closeLog = closeLog
	a.log = logging.NewZap(zl).With("cmd", cmd.Name())
	return nil
}

func (a *app) closingLog(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return run(cmd, args)
	}
}

func (a *app) teardown() {
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
	a.log = logging.Nop()
}
