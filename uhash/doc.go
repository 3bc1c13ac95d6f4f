// Package uhash implements the hash tables that back the gonx graph:
// Set (unique keys) and Dict (key → value), both keyed by 32-bit node IDs.
//
// The tables hash with the universal family
//
//	index = (a*key + c) >> d
//
// where the capacity is 2^k buckets, d = 32 - k, a is an odd multiplier
// and c an additive constant with 0 <= c < 2^d, both chosen at random
// (Woelfel's construction; see the Wikipedia article on universal
// hashing). Collisions are resolved by separate chaining into small
// growable entry slices. When the load factor would exceed 3/4, the
// table doubles its bucket count, picks fresh a and c, and rehashes
// every entry into a new bucket array which is then swapped in; if the
// rebuild cannot complete, the old table remains intact.
//
// Every growth step is metered through an alloc.Allocator so that tests
// can force an out-of-memory failure at any allocation site. A failed
// operation never leaves the table partially mutated.
//
// Iteration order is unspecified and need not match insertion order;
// it is stable only while the table is not mutated. Iterators are
// one-shot and must not outlive a mutation.
package uhash
