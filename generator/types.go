package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for maze generation.
var (
	// ErrUnknownAlgorithm indicates an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")

	// ErrInvalidLevel indicates a level number outside 1..MaxLevel.
	ErrInvalidLevel = errors.New("generator: level out of range")
)

// Algorithm selects the carving strategy.
type Algorithm int

const (
	// DepthFirstSearch is the randomized recursive backtracker.
	DepthFirstSearch Algorithm = iota
	// RandomizedKruskal joins disjoint sets across shuffled walls.
	RandomizedKruskal
	// RandomizedPrim grows a single tree through a random frontier.
	RandomizedPrim
)

// Algorithms lists every supported strategy.
var Algorithms = []Algorithm{DepthFirstSearch, RandomizedKruskal, RandomizedPrim}

func (a Algorithm) String() string {
	switch a {
	case DepthFirstSearch:
		return "dfs"
	case RandomizedKruskal:
		return "kruskal"
	case RandomizedPrim:
		return "prim"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "dfs", "kruskal" or "prim" (case-insensitive) to an
// Algorithm. Returns ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds the generation parameters.
type Options struct {
	// Algorithm selects the carving strategy.
	Algorithm Algorithm

	// Rand is the random source. Nil means a time-seeded source per call.
	Rand *rand.Rand

	// OnCarve is called for every passage opened, in carving order.
	OnCarve func(a, b core.Cell)

	err error
}

// DefaultOptions returns DepthFirstSearch, no fixed source and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Algorithm: DepthFirstSearch,
		OnCarve:   func(core.Cell, core.Cell) {},
	}
}

// WithAlgorithm selects the carving strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithRand sets the random source. A nil source is an ErrOptionViolation.
// The source is not safe for concurrent use; do not share it between
// simultaneous Generate calls.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithOnCarve registers a callback run for every opened passage.
func WithOnCarve(fn func(a, b core.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}
