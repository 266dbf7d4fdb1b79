package algo

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/sequence"
)

// New builds the engine for kind over a fresh permutation of 1..size.
func New(kind Kind, size int, rng *rand.Rand) Engine {
	return NewWith(kind, sequence.New(size, rng), rng)
}

// NewWith builds the engine for kind over seq. The engine takes ownership of
// seq; rng is used by later calls to Reset.
func NewWith(kind Kind, seq *sequence.Sequence, rng *rand.Rand) Engine {
	b := base{seq: seq, rng: rng, size: seq.Len()}
	var e Engine
	switch kind {
	case Selection:
		e = &selectionSort{base: b}
	case Bubble:
		e = &bubbleSort{base: b}
	case Insertion:
		e = &insertionSort{base: b}
	case Gnome:
		e = &gnomeSort{base: b}
	default:
		panic(fmt.Sprintf("algo: no engine for %s", kind))
	}
	e.(rewinder).rewind()
	return e
}

// MaxSteps bounds the number of steps any engine needs for a sequence of n.
func MaxSteps(n int) int {
	return 2*n*n + 2*n + 2
}

// Run steps e until it is done or limit steps have been taken, and returns the
// number of steps taken.
func Run(e Engine, limit int) int {
	taken := 0
	for !e.Done() && taken < limit {
		e.Step()
		taken++
	}
	return taken
}

// rewinder resets cursor fields without touching the sequence.
type rewinder interface {
	rewind()
}

type base struct {
	seq   *sequence.Sequence
	rng   *rand.Rand
	size  int
	stats Stats
}

func (b *base) sealed() {}

func (b *base) Values() []int { return b.seq.Values() }

func (b *base) Stats() Stats { return b.stats }

func (b *base) reseed() {
	b.seq = sequence.New(b.size, b.rng)
	b.stats = Stats{}
}

func (b *base) at(kind Kind, i int) int {
	if !b.seq.InRange(i) {
		panic(&InvariantError{
			Kind: kind,
			Op:   "read",
			Err:  fmt.Errorf("%w: index %d with length %d", sequence.ErrOutOfRange, i, b.seq.Len()),
		})
	}
	return b.seq.At(i)
}

// less compares the values at a and b and counts the comparison.
func (b *base) less(kind Kind, a, c int) bool {
	b.stats.Comparisons++
	return b.at(kind, a) < b.at(kind, c)
}

func (b *base) swap(kind Kind, a, c int) {
	if err := b.seq.Swap(a, c); err != nil {
		panic(&InvariantError{Kind: kind, Op: "swap", Err: err})
	}
	b.stats.Swaps++
}

func (b *base) render(kind Kind, done bool, role func(i int) Role, cursors ...Cursor) RenderState {
	n := b.seq.Len()
	bars := make([]Bar, n)
	for i := 0; i < n; i++ {
		bars[i].Value = b.seq.At(i)
		if done {
			bars[i].Role = RoleSorted
		} else {
			bars[i].Role = role(i)
		}
	}
	return RenderState{
		Kind:    kind,
		Bars:    bars,
		Cursors: cursors,
		Done:    done,
		Stats:   b.stats,
	}
}
