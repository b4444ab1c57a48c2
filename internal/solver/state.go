package solver

import (
	"github.com/go-ricrob/keypadsolver/internal/chain"
	"golang.org/x/exp/slices"
)

// Resulter is the solver result.
type Resulter interface {
	Complexity() uint64
	Codes() []CodeResult
	NumCalcMove() int
}

var _ Resulter = (*results)(nil)

// CodeResult holds the figures of one code.
type CodeResult struct {
	Code       string
	Presses    uint64 // minimal presses of the human operator
	Value      uint64 // numeric part of the code
	Complexity uint64 // Presses * Value
}

type results struct {
	codes       []CodeResult
	complexity  uint64
	numCalcMove int
}

func newResults(n int) *results { return &results{codes: make([]CodeResult, n)} }

func (r *results) sum() error {
	var total uint64
	for _, c := range r.codes {
		var err error
		if total, err = chain.CheckedAdd(total, c.Complexity); err != nil {
			return err
		}
	}
	r.complexity = total
	return nil
}

// Complexity returns the sum of all code complexities.
func (r *results) Complexity() uint64 { return r.complexity }

// Codes returns the per code results in input order.
func (r *results) Codes() []CodeResult { return slices.Clone(r.codes) }

// NumCalcMove returns the number of cached transitions and route search expansions.
func (r *results) NumCalcMove() int { return r.numCalcMove }
