package main

import (
	"fmt"
	"strings"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/route"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	var configPath string
	var fewestTurns bool
	cmd := &cobra.Command{
		Use:       "routes [numeric|directional]",
		Short:     "Print the shortest routes between all buttons of a keypad",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"numeric", "directional"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			l := cfg.Numeric
			if len(args) == 1 && args[0] == "directional" {
				l = cfg.Directional
			}

			var opts []route.Option
			if fewestTurns || cfg.FewestTurns {
				opts = append(opts, route.WithFewestTurns())
			}
			table := route.Generate(l, opts...)

			out := cmd.OutOrStdout()
			for _, p := range table.Pairs() {
				from, to := keypad.Symbol(p.From()), keypad.Symbol(p.To())
				seqs, err := table.Routes(from, to)
				if err != nil {
					fmt.Fprintf(out, "%s -> %s: unreachable\n", from, to)
					continue
				}
				strs := make([]string, len(seqs))
				for i, s := range seqs {
					strs[i] = string(s)
				}
				fmt.Fprintf(out, "%s -> %s: %s\n", from, to, strings.Join(strs, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file")
	cmd.Flags().BoolVar(&fewestTurns, "fewest-turns", false, "Keep only tied routes with the fewest direction changes")
	return cmd
}
