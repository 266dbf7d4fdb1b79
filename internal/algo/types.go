package algo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names that match no algorithm.
var ErrUnknownKind = errors.New("algo: unknown algorithm")

type Kind int

const (
	Selection Kind = iota
	Bubble
	Insertion
	Gnome
)

var kindNames = [...]string{
	Selection: "selection",
	Bubble:    "bubble",
	Insertion: "insertion",
	Gnome:     "gnome",
}

var kindInfo = [...]string{
	Selection: "repeatedly select the minimum of the unsorted suffix",
	Bubble:    "swap adjacent inversions, one pass at a time",
	Insertion: "walk each key backward into the sorted prefix",
	Gnome:     "single cursor that steps back after every swap",
}

// Kinds returns every algorithm in display order.
func Kinds() []Kind {
	return []Kind{Selection, Bubble, Insertion, Gnome}
}

func (k Kind) Valid() bool { return k >= Selection && k <= Gnome }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kindInfo[k]
}

// ParseKind maps a user supplied name such as "bubble", "Bubble-Sort" or
// "insertion_sort" to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "sort")
	n = strings.TrimRight(n, "-_ ")
	for _, k := range Kinds() {
		if kindNames[k] == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Role tags a bar for coloring. It carries no algorithmic meaning.
type Role int

const (
	RoleUnsorted Role = iota
	RoleSorted
	RoleCandidate
	RoleCursor
	RoleCompare
)

func (r Role) String() string {
	switch r {
	case RoleSorted:
		return "sorted"
	case RoleCandidate:
		return "candidate"
	case RoleCursor:
		return "cursor"
	case RoleCompare:
		return "compare"
	default:
		return "unsorted"
	}
}

type Bar struct {
	Value int
	Role  Role
}

// Cursor is a named piece of engine state exposed for status display.
type Cursor struct {
	Name  string
	Index int
}

type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
}

// RenderState is a snapshot of an engine built on demand. Mutating it does not
// affect the engine.
type RenderState struct {
	Kind    Kind
	Bars    []Bar
	Cursors []Cursor
	Done    bool
	Stats   Stats
}

// Values returns the bar heights in order.
func (r RenderState) Values() []int {
	v := make([]int, len(r.Bars))
	for i, b := range r.Bars {
		v[i] = b.Value
	}
	return v
}

// Engine is a sorting algorithm that advances one primitive step at a time.
type Engine interface {
	Kind() Kind
	// Step performs one unit of work. It is a no-op once Done reports true.
	Step()
	// Reset draws a fresh random permutation and rewinds every cursor.
	Reset()
	Done() bool
	Render() RenderState
	// Values returns a copy of the sequence in its current order.
	Values() []int
	Stats() Stats

	sealed()
}

// InvariantError reports step logic that reached outside the sequence. It is
// raised with panic; correct step logic never produces one.
type InvariantError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("algo: %s invariant violated in %s: %v", e.Kind, e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }
