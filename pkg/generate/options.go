package generate

import (
	"fmt"
	"math/rand"
	"strings"
)

// Default weight range used when no WithWeights option is given.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 20
)

// DefaultShuffleThreshold is the density (E divided by V×(V−1)) above which
// StrategyAuto enumerates and shuffles instead of rejection sampling.
const DefaultShuffleThreshold = 0.5

// Strategy selects how Dense picks its edge set.
type Strategy int

const (
	// StrategyAuto picks rejection sampling or shuffling by density.
	StrategyAuto Strategy = iota
	// StrategyRejection samples ordered pairs and discards repeats and loops.
	StrategyRejection
	// StrategyShuffle enumerates every ordered pair and shuffles a prefix.
	StrategyShuffle
)

var strategyNames = map[Strategy]string{
	StrategyAuto:      "auto",
	StrategyRejection: "rejection",
	StrategyShuffle:   "shuffle",
}

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "auto", "rejection" or "shuffle" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for k, name := range strategyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return StrategyAuto, fmt.Errorf("unknown strategy %q (want auto, rejection or shuffle)", s)
}

// config holds the resolved knobs shared by the generators.
type config struct {
	rng       *rand.Rand
	minWeight int
	maxWeight int
	strategy  Strategy
	threshold float64
}

// Option customizes a generator call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
		strategy:  StrategyAuto,
		threshold: DefaultShuffleThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a fresh random source from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeights sets the inclusive weight range [min, max].
// The range is validated by the generator, not here, so plans can report it
// as a configuration error.
func WithWeights(min, max int) Option {
	return func(c *config) { c.minWeight, c.maxWeight = min, max }
}

// WithStrategy forces the Dense edge selection strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithShuffleThreshold overrides DefaultShuffleThreshold for StrategyAuto.
// Panics unless 0 ≤ t ≤ 1.
func WithShuffleThreshold(t float64) Option {
	if t < 0 || t > 1 {
		panic(fmt.Sprintf("generate: WithShuffleThreshold(%g) not in [0,1]", t))
	}
	return func(c *config) { c.threshold = t }
}

// weight draws a weight uniformly from [minWeight, maxWeight].
// A single-value range consumes no randomness.
func (c *config) weight() int {
	if c.minWeight == c.maxWeight {
		return c.minWeight
	}
	return c.minWeight + c.rng.Intn(c.maxWeight-c.minWeight+1)
}
