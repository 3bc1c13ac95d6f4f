package uhash

// Set is a hash set of 32-bit node IDs built on the universal-hashing
// table. The zero value is not usable; construct with NewSet.
type Set[K ~uint32] struct {
	t *table[K, struct{}]
}

// NewSet returns an empty Set with 2^7 buckets.
func NewSet[K ~uint32](opts ...Option) (*Set[K], error) {
	t, err := newTable[K, struct{}](opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{t: t}, nil
}

// Add inserts key into the set. It reports (false, nil) when the key is
// already present; insertion of a duplicate is a no-op, not an error.
// A non-nil error means an allocation failure, in which case the set is
// unchanged.
func (s *Set[K]) Add(key K) (bool, error) {
	return s.t.add(key, struct{}{})
}

// Has reports whether key is in the set.
func (s *Set[K]) Has(key K) bool { return s.t.has(key) }

// Delete removes key from the set, reporting whether it was present.
func (s *Set[K]) Delete(key K) bool { return s.t.del(key) }

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.t.size }

// Any returns some key of the set. It is not random; the first live key
// encountered is returned. The set must not be empty.
func (s *Set[K]) Any() K { return s.t.any().key }

// Random returns a key chosen uniformly at random. The set must not be
// empty.
func (s *Set[K]) Random() K { return s.t.random().key }

// Iter returns a one-shot iterator over the keys of the set, in
// unspecified order. Mutating the set invalidates the iterator.
func (s *Set[K]) Iter() SetIter[K] { return SetIter[K]{it: s.t.iter()} }

// SetIter iterates over the keys of a Set.
type SetIter[K ~uint32] struct {
	it iterator[K, struct{}]
}

// Next returns the next key; ok is false once the set is exhausted.
func (i *SetIter[K]) Next() (key K, ok bool) {
	e, ok := i.it.next()
	return e.key, ok
}
