// Package sequence holds the values being sorted.
//
// A [Sequence] is always a permutation of 1..N. Values are never created or
// destroyed after construction; the only mutation is [Sequence.Swap], which
// reports [ErrOutOfRange] instead of panicking on a bad index.
//
// # Thread Safety
//
// Sequence is NOT thread-safe. Each engine owns its sequence exclusively.
package sequence
