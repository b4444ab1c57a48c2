// Package solver computes the complexity of door codes typed on a numeric
// keypad through a chain of directional keypad robots.
package solver

import (
	"context"
	"log/slog"
	"math"
	"runtime"

	"github.com/go-ricrob/keypadsolver/internal/chain"
	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/logger"
	"github.com/go-ricrob/keypadsolver/internal/route"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Chain depths of the two puzzle parts.
const (
	Part1Depth = 2
	Part2Depth = 25
)

var numWorker = runtime.NumCPU()

// Runner solves a set of codes.
type Runner interface {
	Run(ctx context.Context, codes []string) (Resulter, error)
}

var _ Runner = (*solver)(nil)

// Config configures a solver.
type Config struct {
	// Depth is the number of directional keypad robots above the numeric keypad robot.
	Depth int
	// Workers bounds the number of codes solved in parallel; 0 means one per CPU.
	Workers int
	// Numeric and Directional default to the built-in layouts.
	Numeric, Directional *keypad.Layout
	// FewestTurns keeps only tied routes with the fewest direction changes.
	FewestTurns bool
	// Warm fills the transition cache bottom-up before solving.
	Warm   bool
	Logger *slog.Logger
}

type solver struct {
	depth   int
	workers int
	warm    bool
	numeric *route.Table
	memo    *chain.Memo
	logger  *slog.Logger
}

// New returns a solver for cfg.
func New(cfg Config) (Runner, error) {
	num, dir := cfg.Numeric, cfg.Directional
	if num == nil {
		num = keypad.Numeric()
	}
	if dir == nil {
		dir = keypad.Directional()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = numWorker
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	var opts []route.Option
	if cfg.FewestTurns {
		opts = append(opts, route.WithFewestTurns())
	}
	memo, err := chain.New(route.Generate(dir, opts...), cfg.Depth)
	if err != nil {
		return nil, err
	}

	return &solver{
		depth:   cfg.Depth,
		workers: workers,
		warm:    cfg.Warm,
		numeric: route.Generate(num, opts...),
		memo:    memo,
		logger:  log,
	}, nil
}

// Run solves codes and sums their complexities.
// Codes are solved concurrently and share one transition cache.
func (s *solver) Run(ctx context.Context, codes []string) (Resulter, error) {
	if s.warm {
		if err := s.memo.Warm(ctx, s.depth); err != nil {
			return nil, zerr.Wrap(err, "failed to warm transition cache")
		}
	}

	res := newResults(len(codes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, code := range codes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.solve(code)
			if err != nil {
				return err
			}
			res.codes[i] = r
			s.logger.Debug("code solved", "code", r.Code, "presses", r.Presses, "value", r.Value, "complexity", r.Complexity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := res.sum(); err != nil {
		return nil, err
	}

	stats := s.memo.Stats()
	res.numCalcMove = stats.Entries + s.numeric.NumCalcMove() + s.memo.Table().NumCalcMove()
	s.logger.Info("codes solved",
		"codes", len(codes),
		"depth", s.depth,
		"complexity", res.complexity,
		"cache_entries", stats.Entries,
		"cache_hits", stats.Hits,
		"cache_misses", stats.Misses,
	)
	return res, nil
}

func (s *solver) solve(code string) (CodeResult, error) {
	value, err := convertCodeIn(code)
	if err != nil {
		return CodeResult{}, err
	}

	var presses uint64
	keypad.Sequence(code).Pairs(keypad.Activate, func(from, to keypad.Symbol) bool {
		var best uint64
		if best, err = s.transition(from, to); err != nil {
			return false
		}
		presses, err = chain.CheckedAdd(presses, best)
		return err == nil
	})
	if err != nil {
		return CodeResult{}, zerr.With(err, "code", code)
	}

	complexity, err := chain.CheckedMul(presses, value)
	if err != nil {
		return CodeResult{}, zerr.With(err, "code", code)
	}
	return CodeResult{Code: code, Presses: presses, Value: value, Complexity: complexity}, nil
}

// transition returns the cheapest cost over the numeric routes from one button to another.
func (s *solver) transition(from, to keypad.Symbol) (uint64, error) {
	seqs, err := s.numeric.Routes(from, to)
	if err != nil {
		return 0, err
	}
	best := uint64(math.MaxUint64)
	for _, seq := range seqs {
		c, err := s.memo.Cost(seq, s.depth)
		if err != nil {
			return 0, err
		}
		best = min(best, c)
	}
	return best, nil
}
