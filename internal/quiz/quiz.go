// Package quiz generates randomized reaction problems and judges
// submitted answers against the equilibrium solver.
package quiz

import (
	"math"
	"math/rand"

	"github.com/san-kum/beamlab/internal/beam"
)

// Tolerance is the absolute error allowed on each submitted reaction,
// in kN. Both reactions are judged independently.
const Tolerance = 0.1

// Problem generation ranges. Values are integer meters and kN, and the
// load never sits on a support.
const (
	MinLength = 5
	MaxLength = 20
	MinLoad   = 10
	MaxLoad   = 200
)

// Problem is a single-point-load reaction exercise.
type Problem struct {
	Length   float64 // m
	Load     float64 // kN
	Position float64 // m from the left support
}

// Reactions solves the problem with the equilibrium solver. Problems
// produced by a Generator are always solvable; a hand-built one with
// bad geometry reports zero reactions and ok=false.
func (p Problem) Reactions() (r beam.Reactions, ok bool) {
	b, err := beam.New(p.Length)
	if err != nil {
		return beam.Reactions{}, false
	}
	if err := b.AddPointLoad(p.Load, p.Position); err != nil {
		return beam.Reactions{}, false
	}
	r, err = b.Reactions()
	if err != nil {
		return beam.Reactions{}, false
	}
	return r, true
}

// Solve additionally produces the internal-force profile, for display
// after a correct answer. The gating itself is the caller's policy.
func (p Problem) Solve(n int) (*beam.Result, error) {
	b, err := beam.New(p.Length)
	if err != nil {
		return nil, err
	}
	if err := b.AddPointLoad(p.Load, p.Position); err != nil {
		return nil, err
	}
	return b.Solve(n)
}

// Verdict reports each reaction independently so the learner knows
// which one is off. True values are included for the caller to reveal
// as it sees fit.
type Verdict struct {
	RaOK   bool
	RbOK   bool
	TrueRa float64
	TrueRb float64
}

// Correct reports whether both reactions passed.
func (v Verdict) Correct() bool { return v.RaOK && v.RbOK }

// Check judges submitted reactions against solver truth. Any numeric
// input is accepted; validation itself never fails.
func Check(p Problem, userRa, userRb float64) Verdict {
	truth, ok := p.Reactions()
	if !ok {
		return Verdict{}
	}
	return Verdict{
		RaOK:   math.Abs(userRa-truth.Ra) <= Tolerance,
		RbOK:   math.Abs(userRb-truth.Rb) <= Tolerance,
		TrueRa: truth.Ra,
		TrueRb: truth.Rb,
	}
}

// Generator produces random problems from its own seedable source.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewProblem draws a fresh problem: L in [5,20] m, P in [10,200] kN,
// position in [1, L-1] m, all integers.
func (g *Generator) NewProblem() Problem {
	length := g.rng.Intn(MaxLength-MinLength+1) + MinLength
	load := g.rng.Intn(MaxLoad-MinLoad+1) + MinLoad
	position := g.rng.Intn(length-1) + 1
	return Problem{
		Length:   float64(length),
		Load:     float64(load),
		Position: float64(position),
	}
}
