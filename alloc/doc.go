// Package alloc provides an injectable allocation budget for the gonx
// containers.
//
// Go does not expose allocation failure, so the containers route every
// growth step (a new bucket, a resized backing array, a fresh table)
// through an Allocator before committing it. Production code uses the
// Unlimited allocator, which never fails. Tests install a Budget with a
// finite number of permitted reservations to force an out-of-memory
// condition at any chosen allocation site and to verify that the failed
// operation leaves its container unchanged.
//
// The Allocator only meters growth; it does not own or recycle memory.
// Releasing memory remains the garbage collector's job.
package alloc
