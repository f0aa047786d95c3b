package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo/cryptogram"
)

func (a *app) encryptCommand() *cobra.Command {
	var e, n, message string
	cc := &cobra.Command{
		Use:   "encrypt",
		Short: "Compute message^e mod n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals, err := parseInts(map[string]string{"e": e, "n": n, "message": message})
			if err != nil {
				return err
			}
			c, err := cryptogram.EncryptRaw(vals["message"], vals["e"], vals["n"])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
	cc.Flags().StringVar(&e, "e", "", "public exponent")
	cc.Flags().StringVar(&n, "n", "", "modulus")
	cc.Flags().StringVar(&message, "message", "", "plaintext integer")
	_ = cc.MarkFlagRequired("e")
	_ = cc.MarkFlagRequired("n")
	_ = cc.MarkFlagRequired("message")
	return cc
}

func (a *app) decryptCommand() *cobra.Command {
	var d, n, ciphertext string
	cc := &cobra.Command{
		Use:   "decrypt",
		Short: "Compute ciphertext^d mod n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals, err := parseInts(map[string]string{"d": d, "n": n, "ciphertext": ciphertext})
			if err != nil {
				return err
			}
			defer rsademo.ZeroizeInt(vals["d"])
			m, err := cryptogram.DecryptRaw(vals["ciphertext"], vals["d"], vals["n"])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
			return err
		},
	}
	cc.Flags().StringVar(&d, "d", "", "private exponent")
	cc.Flags().StringVar(&n, "n", "", "modulus")
	cc.Flags().StringVar(&ciphertext, "ciphertext", "", "ciphertext integer")
	_ = cc.MarkFlagRequired("d")
	_ = cc.MarkFlagRequired("n")
	_ = cc.MarkFlagRequired("ciphertext")
	return cc
}

func parseInts(raw map[string]string) (map[string]*big.Int, error) {
	out := make(map[string]*big.Int, len(raw))
	for name, s := range raw {
		v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return nil, errors.Wrapf(rsademo.ErrInvalidConfig, "--%s %q: not a decimal integer", name, s)
		}
		out[name] = v
	}
	return out, nil
}
