// Package algo implements sorting algorithms as resumable state machines.
//
// Each [Engine] performs exactly one primitive unit of work per [Engine.Step]
// call (one comparison, with a possible swap and cursor advance) and keeps
// enough cursor state to resume on the next call:
//
//   - [Selection]: outer boundary i, scan cursor j, index of the smallest value so far
//   - [Bubble]: pass counter i, adjacent pair cursor j
//   - [Insertion]: sorted prefix boundary i, backward cursor j, captured key
//   - [Gnome]: single cursor i
//
// The set of variants is closed: [Kind] enumerates them and [New] is the only
// way to build an engine.
//
// # Example
//
//	rng := rand.New(rand.NewSource(1))
//	e := algo.New(algo.Bubble, 80, rng)
//	for !e.Done() {
//		e.Step()
//	}
//
// # Thread Safety
//
// Engines are NOT thread-safe. They are driven synchronously from a single
// event loop.
package algo
