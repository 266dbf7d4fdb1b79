package store

import "github.com/san-kum/sortviz/internal/algo"

// Frame is the engine state after one step.
type Frame struct {
	Step        int
	Comparisons int
	Swaps       int
	Values      []int
}

type Trace struct {
	Kind    algo.Kind
	Initial []int
	Frames  []Frame
}

// Final returns the values after the last recorded step.
func (t *Trace) Final() []int {
	if len(t.Frames) == 0 {
		return t.Initial
	}
	return t.Frames[len(t.Frames)-1].Values
}

func (t *Trace) Stats() algo.Stats {
	if len(t.Frames) == 0 {
		return algo.Stats{}
	}
	last := t.Frames[len(t.Frames)-1]
	return algo.Stats{Steps: last.Step, Comparisons: last.Comparisons, Swaps: last.Swaps}
}

// Capture steps e until it is done or limit steps have been taken, recording
// a frame after every step.
func Capture(e algo.Engine, limit int) *Trace {
	t := &Trace{Kind: e.Kind(), Initial: e.Values()}
	for i := 0; i < limit && !e.Done(); i++ {
		e.Step()
		st := e.Stats()
		t.Frames = append(t.Frames, Frame{
			Step:        st.Steps,
			Comparisons: st.Comparisons,
			Swaps:       st.Swaps,
			Values:      e.Values(),
		})
	}
	return t
}
