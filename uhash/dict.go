package uhash

// Dict is a hash table mapping 32-bit node IDs to values of type V,
// built on the same universal-hashing machinery as Set. The zero value
// is not usable; construct with NewDict.
type Dict[K ~uint32, V any] struct {
	t *table[K, V]
}

// NewDict returns an empty Dict with 2^7 buckets.
func NewDict[K ~uint32, V any](opts ...Option) (*Dict[K, V], error) {
	t, err := newTable[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Dict[K, V]{t: t}, nil
}

// Add inserts key → val. It reports (false, nil) when the key is already
// present; the stored value is then left untouched. A non-nil error means
// an allocation failure, in which case the dict is unchanged.
func (d *Dict[K, V]) Add(key K, val V) (bool, error) {
	return d.t.add(key, val)
}

// Has reports whether key is in the dict.
func (d *Dict[K, V]) Has(key K) bool { return d.t.has(key) }

// Get returns the value stored under key.
func (d *Dict[K, V]) Get(key K) (V, bool) { return d.t.get(key) }

// Put sets key → val, overwriting any existing value. Unlike Add it never
// rejects duplicates; it still fails on allocation errors for new keys.
func (d *Dict[K, V]) Put(key K, val V) error {
	if i, j, ok := d.t.locate(key); ok {
		d.t.bucket[i][j].val = val
		return nil
	}
	_, err := d.t.add(key, val)
	return err
}

// Delete removes key, reporting whether it was present.
func (d *Dict[K, V]) Delete(key K) bool { return d.t.del(key) }

// Len returns the number of entries in the dict.
func (d *Dict[K, V]) Len() int { return d.t.size }

// Any returns some key of the dict. The dict must not be empty.
func (d *Dict[K, V]) Any() K { return d.t.any().key }

// Random returns a key chosen uniformly at random. The dict must not be
// empty.
func (d *Dict[K, V]) Random() K { return d.t.random().key }

// Iter returns a one-shot iterator over the entries of the dict, in
// unspecified order. Mutating the dict invalidates the iterator.
func (d *Dict[K, V]) Iter() DictIter[K, V] { return DictIter[K, V]{it: d.t.iter()} }

// DictIter iterates over the entries of a Dict.
type DictIter[K ~uint32, V any] struct {
	it iterator[K, V]
}

// Next returns the next key/value pair; ok is false once the dict is
// exhausted.
func (i *DictIter[K, V]) Next() (key K, val V, ok bool) {
	e, ok := i.it.next()
	return e.key, e.val, ok
}
