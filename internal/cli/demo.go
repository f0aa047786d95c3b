package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/cryptogram"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/keys"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/logging"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/prime"
)

func (a *app) keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate and print a key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := a.generate(cmd)
			if err != nil {
				return err
			}
			defer kp.Zeroize()
			return render(cmd.OutOrStdout(), a.cfg.Format, a.keyRows(kp))
		},
	}
}

// runDemo generates a key pair, encrypts the configured message and decrypts
// it again, printing every intermediate value.
func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	msg, err := a.cfg.MessageInt()
	if err != nil {
		return err
	}
	kp, err := a.generate(cmd)
	if err != nil {
		return err
	}
	defer kp.Zeroize()

	ciphertext, err := cryptogram.Encrypt(kp.Public, msg)
	if err != nil {
		return err
	}
	decrypted, err := cryptogram.Decrypt(kp.Private, ciphertext)
	if err != nil {
		return err
	}
	if decrypted.Cmp(msg) != 0 {
		return errors.Wrapf(rsademo.ErrInvalidKey, "round trip returned %s for %s", decrypted, msg)
	}
	a.log.Info(cmd.Context(), "round trip complete", "n", kp.Public.N().String())

	rows := append(a.keyRows(kp),
		table.Row{"message text", a.cfg.MessageText},
		table.Row{"message", msg.String()},
		table.Row{"ciphertext", ciphertext.String()},
		table.Row{"m^e mod n", powCell(msg.String(), kp.Public.E().String(), kp.Public.N().String(), ciphertext.String())},
		table.Row{"decrypted", decrypted.String()},
		table.Row{"c^d mod n", powCell(ciphertext.String(), exponentCell(kp.Private, a.cfg.RevealPrivate), kp.Public.N().String(), decrypted.String())},
	)
	return render(cmd.OutOrStdout(), a.cfg.Format, rows)
}

func (a *app) generate(cmd *cobra.Command) (*keys.KeyPair, error) {
	bound, err := a.cfg.BoundInt()
	if err != nil {
		return nil, err
	}
	src, err := prime.NewSource(prime.Kind(a.cfg.Source), a.rand, a.cfg.MillerRabinRounds)
	if err != nil {
		return nil, err
	}
	return keys.Generate(cmd.Context(), src, bound,
		keys.WithMaxAttempts(a.cfg.MaxAttempts),
		keys.WithLogger(a.log),
	)
}

func (a *app) keyRows(kp *keys.KeyPair) []table.Row {
	p, q := kp.Primes()
	return []table.Row{
		{"p", p.String()},
		{"q", q.String()},
		{"phi(n)", kp.Totient().String()},
		{"e", kp.Public.E().String()},
		{"n", kp.Public.N().String()},
		{"public key", kp.Public.String()},
		{"private key", privateKeyCell(kp.Private, a.cfg.RevealPrivate)},
	}
}

// privateKeyCell shows d only when reveal is set. The demo exists to show
// every value; the library itself never renders d.
func privateKeyCell(priv *keys.PrivateKey, reveal bool) string {
	if !reveal {
		return priv.String()
	}
	return "n=" + priv.N().String() + ", d=" + exponentCell(priv, true)
}

// exponentCell is d in decimal, or the redaction placeholder.
func exponentCell(priv *keys.PrivateKey, reveal bool) string {
	if !reveal {
		return logging.Placeholder()
	}
	d := priv.Exponent()
	defer rsademo.ZeroizeInt(d)
	return d.String()
}

// powCell renders "base^exp mod n = result".
func powCell(base, exp, n, result string) string {
	return base + "^" + exp + " mod " + n + " = " + result
}
