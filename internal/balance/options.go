package balance

import (
	"math/rand"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Option configures a single Partition call.
type Option func(*options)

type options struct {
	seed     int64
	seeded   bool
	shuffler Shuffler
}

// WithSeed shuffles the roster with a math/rand source seeded by seed, so the
// same seed and roster always produce the same split.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.shuffler = nil
	}
}

// WithShuffler uses s to permute the roster.
func WithShuffler(s Shuffler) Option {
	return func(o *options) {
		if s != nil {
			o.shuffler = s
			o.seeded = false
		}
	}
}

// WithOrder keeps the roster in the order given by the caller.
func WithOrder() Option {
	return WithShuffler(identity{})
}

type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

func resolveOptions(opts []Option) (Shuffler, int64) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.shuffler != nil {
		return o.shuffler, 0
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(o.seed)), o.seed
}
