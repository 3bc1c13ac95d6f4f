package uhash

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gonx/alloc"
)

// params holds the universal-hash parameters of a table.
//
// The bucket index of a key x is (a*x + c) >> d with all arithmetic in
// uint32, so a*x + c wraps modulo 2^32 as the construction requires.
type params struct {
	k        uint32 // capacity exponent
	capacity uint32 // 2^k buckets
	d        uint32 // shift, keyBits - k
	a        uint32 // odd multiplier
	c        uint32 // additive constant in [0, 2^d)
}

// newParams draws fresh hash parameters for a table with 2^k buckets.
func newParams(k uint32, rng *rand.Rand) params {
	p := params{
		k:        k,
		capacity: 1 << k,
		d:        keyBits - k,
	}
	// a must be odd; c keeps only d significant bits.
	p.a = rng.Uint32() | 1
	p.c = rng.Uint32() >> p.k
	return p
}

func (p params) index(key uint32) uint32 {
	return (p.a*key + p.c) >> p.d
}

// entry is a stored key with its (possibly zero-sized) value.
type entry[K ~uint32, V any] struct {
	key K
	val V
}

// table is the shared machinery behind Set and Dict.
type table[K ~uint32, V any] struct {
	alloc  alloc.Allocator
	rng    *rand.Rand
	p      params
	bucket [][]entry[K, V] // nil slice = empty bucket
	size   int
}

func newTable[K ~uint32, V any](opts ...Option) (*table[K, V], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rng := rngFromSeed(o.seed)
	p := newParams(defaultExponent, rng)
	if err := o.alloc.Reserve(int(p.capacity)); err != nil {
		return nil, fmt.Errorf("uhash: bucket array: %w", err)
	}
	return &table[K, V]{
		alloc:  o.alloc,
		rng:    rng,
		p:      p,
		bucket: make([][]entry[K, V], p.capacity),
	}, nil
}

// locate returns the bucket index of key and, when present, the entry
// index within that bucket. ok reports presence.
func (t *table[K, V]) locate(key K) (i uint32, j int, ok bool) {
	i = t.p.index(uint32(key))
	for j, e := range t.bucket[i] {
		if e.key == key {
			return i, j, true
		}
	}
	return i, 0, false
}

func (t *table[K, V]) has(key K) bool {
	_, _, ok := t.locate(key)
	return ok
}

func (t *table[K, V]) get(key K) (V, bool) {
	i, j, ok := t.locate(key)
	if !ok {
		var zero V
		return zero, false
	}
	return t.bucket[i][j].val, true
}

// add inserts key with val. It reports false with a nil error when the
// key is already present. On an allocation failure the table is exactly
// as it was before the call.
func (t *table[K, V]) add(key K, val V) (bool, error) {
	i, _, ok := t.locate(key)
	if ok {
		return false, nil
	}

	grown, err := t.appendEntry(i, entry[K, V]{key: key, val: val})
	if err != nil {
		return false, err
	}

	// Load factor bound 3/4: resize when size+1 >= 3 * 2^(k-2).
	if t.size+1 >= 3<<(t.p.k-2) {
		if err = t.resize(); err != nil {
			// Roll back the appended entry; the pre-resize buckets are
			// untouched because resize rebuilds into a fresh array.
			b := t.bucket[i]
			t.bucket[i] = b[:len(b)-1]
			if grown && len(t.bucket[i]) == 0 {
				t.bucket[i] = nil
			}
			return false, err
		}
	}
	t.size++
	return true, nil
}

// appendEntry places e into bucket i, metering any backing growth.
// grown reports that the bucket slice was newly created.
func (t *table[K, V]) appendEntry(i uint32, e entry[K, V]) (grown bool, err error) {
	b := t.bucket[i]
	switch {
	case b == nil:
		if err = t.alloc.Reserve(bucketSeedCapacity); err != nil {
			return false, fmt.Errorf("uhash: new bucket: %w", err)
		}
		b = make([]entry[K, V], 0, bucketSeedCapacity)
		grown = true
	case len(b) == cap(b):
		if err = t.alloc.Reserve(2 * cap(b)); err != nil {
			return false, fmt.Errorf("uhash: grow bucket: %w", err)
		}
		nb := make([]entry[K, V], len(b), 2*cap(b))
		copy(nb, b)
		b = nb
	}
	t.bucket[i] = append(b, e)
	return grown, nil
}

// resize doubles the bucket count, draws fresh hash parameters, and
// rehashes every live entry into a new bucket array which is swapped in
// atomically. On failure the receiver keeps its previous array and
// parameters.
func (t *table[K, V]) resize() error {
	if t.p.k >= maxExponent {
		return ErrTableFull
	}
	np := newParams(t.p.k+1, t.rng)
	if err := t.alloc.Reserve(int(np.capacity)); err != nil {
		return fmt.Errorf("uhash: resize bucket array: %w", err)
	}
	nb := make([][]entry[K, V], np.capacity)

	for _, b := range t.bucket {
		for _, e := range b {
			i := np.index(uint32(e.key))
			dst := nb[i]
			switch {
			case dst == nil:
				if err := t.alloc.Reserve(bucketSeedCapacity); err != nil {
					return fmt.Errorf("uhash: resize bucket: %w", err)
				}
				dst = make([]entry[K, V], 0, bucketSeedCapacity)
			case len(dst) == cap(dst):
				if err := t.alloc.Reserve(2 * cap(dst)); err != nil {
					return fmt.Errorf("uhash: resize bucket: %w", err)
				}
				grown := make([]entry[K, V], len(dst), 2*cap(dst))
				copy(grown, dst)
				dst = grown
			}
			nb[i] = append(dst, e)
		}
	}

	t.p = np
	t.bucket = nb
	return nil
}

// del removes key, reporting whether it was present.
func (t *table[K, V]) del(key K) bool {
	if t.size == 0 {
		return false
	}
	i, j, ok := t.locate(key)
	if !ok {
		return false
	}
	b := t.bucket[i]
	b[j] = b[len(b)-1]
	t.bucket[i] = b[:len(b)-1]
	if len(t.bucket[i]) == 0 {
		t.bucket[i] = nil
	}
	t.size--
	return true
}

// any returns the first live entry found. The table must not be empty.
func (t *table[K, V]) any() entry[K, V] {
	for _, b := range t.bucket {
		if len(b) > 0 {
			return b[0]
		}
	}
	panic("uhash: any on empty table")
}

// random returns a uniformly random live entry. The table must not be
// empty.
func (t *table[K, V]) random() entry[K, V] {
	n := t.rng.Intn(t.size)
	for _, b := range t.bucket {
		if n < len(b) {
			return b[n]
		}
		n -= len(b)
	}
	panic("uhash: random on empty table")
}

// iterator walks every live entry of a table exactly once. It is
// one-shot; mutating the table invalidates it.
type iterator[K ~uint32, V any] struct {
	t *table[K, V]
	i int // bucket index
	j int // entry index within bucket i
}

func (t *table[K, V]) iter() iterator[K, V] {
	return iterator[K, V]{t: t}
}

func (it *iterator[K, V]) next() (entry[K, V], bool) {
	for it.i < len(it.t.bucket) {
		b := it.t.bucket[it.i]
		if it.j < len(b) {
			e := b[it.j]
			it.j++
			return e, true
		}
		it.i++
		it.j = 0
	}
	return entry[K, V]{}, false
}
