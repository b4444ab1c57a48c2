// Command keypadsolver prints the summed complexity of door codes typed through
// a chain of keypad robots.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-ricrob/keypadsolver/internal/config"
	"github.com/go-ricrob/keypadsolver/internal/logger"
	"github.com/go-ricrob/keypadsolver/internal/solver"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// version is set at link time.
var version = "dev"

type flags struct {
	config      string
	depth       int
	part        int
	workers     int
	fewestTurns bool
	warm        bool
	verbose     bool
	codes       bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "keypadsolver [file]",
		Short:         "Minimal button presses of a human driving a chain of keypad robots",
		Long:          "Reads one door code per line from file (or stdin) and prints the sum of\nminimal press count times numeric code value over all codes.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "Configuration file")
	fl.IntVarP(&f.part, "part", "p", 0, "Puzzle part: 1 (depth 2) or 2 (depth 25)")
	fl.IntVarP(&f.depth, "depth", "d", 0, "Number of directional keypad robots, overrides part and config")
	fl.IntVarP(&f.workers, "workers", "w", 0, "Number of codes solved in parallel (default one per CPU)")
	fl.BoolVar(&f.fewestTurns, "fewest-turns", false, "Keep only tied routes with the fewest direction changes")
	fl.BoolVar(&f.warm, "warm", false, "Fill the transition cache bottom-up before solving")
	fl.BoolVarP(&f.codes, "codes", "s", false, "Print the result of every code")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newRoutesCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func solve(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if fl.Changed("part") {
		if cfg.Depth, err = config.PartDepth(f.part); err != nil {
			return err
		}
	}
	if fl.Changed("depth") {
		cfg.Depth = f.depth
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	cfg.FewestTurns = cfg.FewestTurns || f.fewestTurns
	cfg.Warm = cfg.Warm || f.warm
	if err := cfg.Validate(); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open input"), "path", args[0])
		}
		defer file.Close()
		in = file
	}
	codes, err := solver.ReadCodes(in)
	if err != nil {
		return err
	}

	s, err := solver.New(cfg.Solver(logger.New(cmd.ErrOrStderr(), f.verbose)))
	if err != nil {
		return err
	}
	res, err := s.Run(cmd.Context(), codes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.codes {
		for _, c := range res.Codes() {
			fmt.Fprintf(out, "%s\t%d * %d = %d\n", c.Code, c.Presses, c.Value, c.Complexity)
		}
	}
	fmt.Fprintln(out, res.Complexity())
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "keypadsolver version %s\n", version)
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Default(false).Error("operation failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
