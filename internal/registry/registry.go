// Package registry keeps one sorting engine per algorithm and forwards driver
// commands to the active one.
//
// Switching the active algorithm never touches the other engines, so going
// back to an algorithm resumes it exactly where it stopped. A Registry is NOT
// safe for concurrent use; a driver calls it from a single event loop.
package registry

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownAlgorithm indicates a selection that names no registered engine.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

	// ErrInvalidCount indicates a step batch smaller than one.
	ErrInvalidCount = errors.New("registry: step count must be at least 1")
)

const DefaultMaxRepeat = 64

type Registry struct {
	engines   map[algo.Kind]algo.Engine
	order     []algo.Kind
	active    algo.Kind
	repeat    int
	maxRepeat int
	rng       *rand.Rand
	log       logrus.FieldLogger
}

type Option func(*Registry)

// WithRand sets the random source shared by every engine for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(r *Registry) { r.rng = rng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Registry) { r.log = log }
}

// WithActive sets the initially active algorithm. Invalid kinds are ignored.
func WithActive(kind algo.Kind) Option {
	return func(r *Registry) {
		if kind.Valid() {
			r.active = kind
		}
	}
}

func WithMaxRepeat(n int) Option {
	return func(r *Registry) {
		if n >= 1 {
			r.maxRepeat = n
		}
	}
}

// WithRepeat sets the initial batch size used by step commands without an
// explicit count.
func WithRepeat(n int) Option {
	return func(r *Registry) { r.repeat = n }
}

// New builds one engine per algorithm, each over its own shuffled sequence of
// the given size.
func New(size int, opts ...Option) *Registry {
	r := &Registry{
		engines:   make(map[algo.Kind]algo.Engine),
		order:     algo.Kinds(),
		active:    algo.Selection,
		repeat:    1,
		maxRepeat: DefaultMaxRepeat,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if r.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.log = l
	}
	r.repeat = clamp(r.repeat, 1, r.maxRepeat)

	for _, kind := range r.order {
		r.engines[kind] = algo.New(kind, size, r.rng)
	}
	return r
}

func (r *Registry) Active() algo.Kind { return r.active }

// Kinds returns the registered algorithms in display order.
func (r *Registry) Kinds() []algo.Kind {
	out := make([]algo.Kind, len(r.order))
	copy(out, r.order)
	return out
}

// Engine returns the engine registered for kind, or nil.
func (r *Registry) Engine(kind algo.Kind) algo.Engine {
	return r.engines[kind]
}

func (r *Registry) Repeat() int { return r.repeat }

func (r *Registry) MaxRepeat() int { return r.maxRepeat }

// Select makes kind the active algorithm.
func (r *Registry) Select(kind algo.Kind) error {
	if _, ok := r.engines[kind]; !ok {
		r.log.WithField("algo", int(kind)).Warn("rejected selection")
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, kind)
	}
	if kind != r.active {
		r.log.WithFields(logrus.Fields{"from": r.active, "to": kind}).Debug("selected algorithm")
	}
	r.active = kind
	return nil
}

// SelectName parses name and selects it.
func (r *Registry) SelectName(name string) error {
	kind, err := algo.ParseKind(name)
	if err != nil {
		r.log.WithField("algo", name).Warn("rejected selection")
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return r.Select(kind)
}

// Next activates the algorithm after the current one, wrapping around.
func (r *Registry) Next() algo.Kind {
	for i, k := range r.order {
		if k == r.active {
			r.active = r.order[(i+1)%len(r.order)]
			break
		}
	}
	return r.active
}

// StepActive runs times steps on the active engine before returning.
func (r *Registry) StepActive(times int) error {
	if times < 1 {
		r.log.WithField("times", times).Warn("rejected step batch")
		return fmt.Errorf("%w: got %d", ErrInvalidCount, times)
	}
	e := r.engines[r.active]
	for i := 0; i < times; i++ {
		e.Step()
	}
	if e.Done() {
		r.log.WithFields(logrus.Fields{"algo": r.active, "steps": e.Stats().Steps}).Debug("sorted")
	}
	return nil
}

// ResetActive reshuffles the active engine only.
func (r *Registry) ResetActive() {
	r.engines[r.active].Reset()
	r.log.WithField("algo", r.active).Debug("reset")
}

func (r *Registry) RenderActive() algo.RenderState {
	return r.engines[r.active].Render()
}

// AdjustRepeat changes the batch size by delta, clamped to [1, MaxRepeat].
func (r *Registry) AdjustRepeat(delta int) int {
	r.repeat = clamp(r.repeat+delta, 1, r.maxRepeat)
	return r.repeat
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
