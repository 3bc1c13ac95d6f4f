// Package seq provides the two sequence containers the traversal
// algorithms run on: a FIFO Queue backed by a circular buffer and a
// LIFO Stack backed by a growable array.
//
// Both containers double their capacity when full; the Queue
// re-linearizes on resize so the head lands at index 0. All growth is
// metered through an alloc.Allocator, and a failed growth leaves the
// container unchanged, mirroring the allocation-failure contract of the
// uhash tables.
package seq
