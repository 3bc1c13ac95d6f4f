// Package uhash provides option types and error definitions for the
// Set and Dict hash tables.
package uhash

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gonx/alloc"
)

const (
	// defaultExponent is the exponent k of the initial bucket count 2^k.
	defaultExponent = 7

	// keyBits is the bit width of a table key.
	keyBits = 32

	// maxExponent bounds k; at 2^31 buckets the shift d stays positive.
	maxExponent = 31

	// bucketSeedCapacity is the initial capacity of a chained bucket.
	bucketSeedCapacity = 2

	// defaultHashSeed seeds the hash-parameter RNG when no seed is given,
	// keeping table layouts reproducible by default.
	defaultHashSeed int64 = 1
)

// ErrTableFull is returned when a table cannot grow beyond 2^31 buckets.
var ErrTableFull = errors.New("uhash: maximum bucket count reached")

// Option configures a Set or Dict at construction time.
type Option func(*options)

type options struct {
	alloc alloc.Allocator
	seed  int64
}

func defaultOptions() options {
	return options{
		alloc: alloc.Unlimited(),
		seed:  0,
	}
}

// WithAllocator meters the table's growth through a. Tests use a budgeted
// allocator to probe out-of-memory behavior.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithSeed fixes the seed of the RNG that draws the hash parameters a and
// c and serves Random. Seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// rngFromSeed maps seed 0 to the stable default seed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultHashSeed
	}
	return rand.New(rand.NewSource(seed))
}
