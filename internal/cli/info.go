package cli

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", Name, rsademo.WrapperVersion(), rsademo.BuildCommit())
			return err
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := a.v.AllKeys()
			sort.Strings(keys)
			rows := make([]table.Row, 0, len(keys))
			for _, k := range keys {
				rows = append(rows, table.Row{k, fmt.Sprint(a.v.Get(k))})
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, rows)
		},
	}
}
