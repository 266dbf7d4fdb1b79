package algo

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/san-kum/sortviz/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrom(t *testing.T, kind Kind, values []int) Engine {
	t.Helper()
	seq, err := sequence.FromValues(values)
	require.NoError(t, err)
	return NewWith(kind, seq, rand.New(rand.NewSource(1)))
}

func runToDone(t *testing.T, e Engine) int {
	t.Helper()
	n := len(e.Values())
	steps := Run(e, MaxSteps(n))
	require.True(t, e.Done(), "%s did not finish within %d steps", e.Kind(), MaxSteps(n))
	return steps
}

func TestEnginesSortEveryInput(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 5, 16, 80}
	for _, kind := range Kinds() {
		for _, size := range sizes {
			for seed := int64(0); seed < 5; seed++ {
				e := New(kind, size, rand.New(rand.NewSource(seed)))
				initial := e.Values()

				runToDone(t, e)

				final := e.Values()
				assert.True(t, sort.IntsAreSorted(final), "%s size %d seed %d: %v", kind, size, seed, final)
				assert.ElementsMatch(t, initial, final, "%s lost or duplicated values", kind)
			}
		}
	}
}

func TestEnginesHandleExtremeOrders(t *testing.T) {
	ascending := []int{1, 2, 3, 4, 5, 6, 7, 8}
	descending := []int{8, 7, 6, 5, 4, 3, 2, 1}

	for _, kind := range Kinds() {
		for _, values := range [][]int{ascending, descending} {
			e := newFrom(t, kind, values)
			runToDone(t, e)
			assert.Equal(t, ascending, e.Values(), "%s from %v", kind, values)
		}
	}
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			e := New(kind, 12, rand.New(rand.NewSource(3)))
			runToDone(t, e)

			before := e.Render()
			for i := 0; i < 25; i++ {
				e.Step()
			}
			after := e.Render()

			assert.Equal(t, before, after)
			assert.True(t, e.Done())
		})
	}
}

func TestStepCountIsDeterministic(t *testing.T) {
	values := []int{5, 9, 1, 7, 3, 10, 2, 8, 4, 6}
	for _, kind := range Kinds() {
		a := runToDone(t, newFrom(t, kind, values))
		b := runToDone(t, newFrom(t, kind, values))
		assert.Equal(t, a, b, "%s step count differs between runs", kind)
	}
}

func TestReset(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			e := New(kind, 10, rand.New(rand.NewSource(11)))
			runToDone(t, e)

			e.Reset()

			assert.False(t, e.Done())
			assert.Equal(t, Stats{}, e.Stats())
			seq, err := sequence.FromValues(e.Values())
			require.NoError(t, err, "reset must produce a permutation of 1..N")
			assert.Equal(t, 10, seq.Len())
		})
	}
}

func TestResetDrawsNewPermutations(t *testing.T) {
	e := New(Bubble, 20, rand.New(rand.NewSource(5)))
	first := e.Values()
	changed := false
	for i := 0; i < 5; i++ {
		e.Reset()
		if !assert.ObjectsAreEqual(first, e.Values()) {
			changed = true
			break
		}
	}
	assert.True(t, changed, "five resets kept the same order")
}

func TestSelectionScenario(t *testing.T) {
	e := newFrom(t, Selection, []int{3, 1, 4, 2})

	// First outer pass: scan positions 0..3.
	e.Step()
	e.Step()
	for i := 0; i < 2; i++ {
		r := e.Render()
		assert.Equal(t, RoleCandidate, r.Bars[1].Role, "smallest should track index 1")
		assert.Equal(t, 1, r.Bars[1].Value)
		e.Step()
	}
	r := e.Render()
	assert.Equal(t, RoleCandidate, r.Bars[1].Role)
	assert.Equal(t, []int{3, 1, 4, 2}, e.Values(), "no swap before the scan completes")

	e.Step()
	assert.Equal(t, []int{1, 3, 4, 2}, e.Values())
	assert.Equal(t, RoleSorted, e.Render().Bars[0].Role)

	steps := 5 + runToDone(t, e)
	assert.Equal(t, []int{1, 2, 3, 4}, e.Values())
	assert.Equal(t, 14, steps)
	assert.Equal(t, Stats{Steps: 14, Comparisons: 10, Swaps: 3}, e.Stats())
}

func TestBubbleScenario(t *testing.T) {
	e := newFrom(t, Bubble, []int{2, 1, 4, 3})

	e.Step()
	assert.Equal(t, []int{1, 2, 4, 3}, e.Values(), "pair (0,1) swaps")
	e.Step()
	assert.Equal(t, []int{1, 2, 4, 3}, e.Values(), "pair (1,2) stays")
	e.Step()
	assert.Equal(t, []int{1, 2, 3, 4}, e.Values(), "pair (2,3) swaps")

	e.Step()
	assert.False(t, e.Done(), "sorted after one pass but the pass counter is not exhausted")
	r := e.Render()
	assert.Equal(t, RoleCompare, r.Bars[0].Role)
	assert.Equal(t, RoleCompare, r.Bars[1].Role)
	assert.Equal(t, RoleSorted, r.Bars[3].Role)

	steps := 4 + runToDone(t, e)
	assert.Equal(t, 9, steps)
	assert.Equal(t, Stats{Steps: 9, Comparisons: 6, Swaps: 2}, e.Stats())
}

func TestInsertionScenario(t *testing.T) {
	e := newFrom(t, Insertion, []int{3, 1, 4, 2})

	r := e.Render()
	assert.Equal(t, RoleCompare, r.Bars[0].Role)
	assert.Equal(t, RoleCompare, r.Bars[1].Role)

	e.Step()
	assert.Equal(t, []int{1, 3, 4, 2}, e.Values())

	// Key reached position 0; the next step advances without reading index -1.
	e.Step()
	assert.Equal(t, []int{1, 3, 4, 2}, e.Values())

	steps := 2 + runToDone(t, e)
	assert.Equal(t, []int{1, 2, 3, 4}, e.Values())
	assert.Equal(t, Stats{Steps: 6, Comparisons: 5, Swaps: 3}, e.Stats())
	assert.Equal(t, 6, steps)
}

func TestInsertionFloorOnDescendingInput(t *testing.T) {
	e := newFrom(t, Insertion, []int{5, 4, 3, 2, 1})
	assert.NotPanics(t, func() { runToDone(t, e) })
	// Each key i swaps i times and takes one extra step at the floor.
	assert.Equal(t, Stats{Steps: 14, Comparisons: 10, Swaps: 10}, e.Stats())
}

func TestGnomeScenario(t *testing.T) {
	e := newFrom(t, Gnome, []int{3, 1, 4, 2})

	e.Step()
	r := e.Render()
	assert.Equal(t, RoleCompare, r.Bars[0].Role)
	assert.Equal(t, RoleCompare, r.Bars[1].Role)
	assert.Equal(t, RoleUnsorted, r.Bars[2].Role)

	e.Step()
	assert.Equal(t, []int{1, 3, 4, 2}, e.Values())

	runToDone(t, e)
	assert.Equal(t, []int{1, 2, 3, 4}, e.Values())
	assert.Equal(t, Stats{Steps: 10, Comparisons: 8, Swaps: 3}, e.Stats())
}

func TestDoneRendersAllSorted(t *testing.T) {
	for _, kind := range Kinds() {
		e := newFrom(t, kind, []int{2, 3, 1})
		runToDone(t, e)
		r := e.Render()
		assert.True(t, r.Done)
		assert.Equal(t, kind, r.Kind)
		for i, b := range r.Bars {
			assert.Equal(t, RoleSorted, b.Role, "%s bar %d", kind, i)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e := newFrom(t, Bubble, []int{2, 1, 3})
	r := e.Render()
	r.Bars[0].Value = 99
	assert.Equal(t, []int{2, 1, 3}, e.Values())
	assert.Equal(t, 0, e.Stats().Steps)
}

func TestTrivialSizes(t *testing.T) {
	for _, kind := range Kinds() {
		empty := newFrom(t, kind, nil)
		assert.True(t, empty.Done(), "%s with no values", kind)
		assert.NotPanics(t, empty.Step)

		single := newFrom(t, kind, []int{1})
		runToDone(t, single)
		assert.Equal(t, []int{1}, single.Values())
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"selection", Selection},
		{"Bubble", Bubble},
		{"insertion_sort", Insertion},
		{"gnome-sort", Gnome},
		{" bubblesort ", Bubble},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("quick")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	_, err = ParseKind("sort")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestKindStrings(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.NotEmpty(t, k.Description())
	}
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestNewWithUnknownKindPanics(t *testing.T) {
	seq, _ := sequence.FromValues([]int{1})
	assert.Panics(t, func() { NewWith(Kind(42), seq, rand.New(rand.NewSource(1))) })
}

func TestInvariantErrorUnwraps(t *testing.T) {
	e := newFrom(t, Gnome, []int{1, 2})
	g := e.(*gnomeSort)

	defer func() {
		r := recover()
		ie, ok := r.(*InvariantError)
		require.True(t, ok, "expected *InvariantError, got %T", r)
		assert.True(t, errors.Is(ie, sequence.ErrOutOfRange))
		assert.Equal(t, Gnome, ie.Kind)
	}()
	g.swap(Gnome, 0, 5)
}
