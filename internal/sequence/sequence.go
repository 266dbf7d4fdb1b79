package sequence

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOutOfRange indicates a swap index outside [0, Len()).
	ErrOutOfRange = errors.New("sequence: index out of range")

	// ErrNotPermutation indicates values that are not exactly 1..N.
	ErrNotPermutation = errors.New("sequence: values are not a permutation of 1..N")
)

// Sequence is a permutation of 1..N that only ever changes by swapping.
type Sequence struct {
	values []int
}

// New returns a uniformly shuffled permutation of 1..size.
func New(size int, rng *rand.Rand) *Sequence {
	if size < 0 {
		size = 0
	}
	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return &Sequence{values: values}
}

// FromValues adopts a copy of values, which must be a permutation of 1..len(values).
func FromValues(values []int) (*Sequence, error) {
	s := &Sequence{values: make([]int, len(values))}
	copy(s.values, values)
	if !s.IsPermutation() {
		return nil, fmt.Errorf("%w: %v", ErrNotPermutation, values)
	}
	return s, nil
}

func (s *Sequence) Len() int { return len(s.values) }

func (s *Sequence) At(i int) int { return s.values[i] }

func (s *Sequence) InRange(i int) bool { return i >= 0 && i < len(s.values) }

// Swap exchanges the values at a and b. Nothing changes when either index is invalid.
func (s *Sequence) Swap(a, b int) error {
	if !s.InRange(a) || !s.InRange(b) {
		return fmt.Errorf("%w: swap(%d, %d) with length %d", ErrOutOfRange, a, b, len(s.values))
	}
	s.values[a], s.values[b] = s.values[b], s.values[a]
	return nil
}

// Values returns a copy of the current ordering.
func (s *Sequence) Values() []int {
	c := make([]int, len(s.values))
	copy(c, s.values)
	return c
}

func (s *Sequence) Clone() *Sequence {
	return &Sequence{values: s.Values()}
}

func (s *Sequence) IsSorted() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i-1] > s.values[i] {
			return false
		}
	}
	return true
}

func (s *Sequence) IsPermutation() bool {
	seen := make([]bool, len(s.values)+1)
	for _, v := range s.values {
		if v < 1 || v > len(s.values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (s *Sequence) Equal(other *Sequence) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for i, v := range s.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}
