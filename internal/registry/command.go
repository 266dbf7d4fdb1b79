package registry

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/algo"
)

type Op int

const (
	OpSelect Op = iota
	OpStep
	OpReset
	OpRepeat
	OpNext
)

func (o Op) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpStep:
		return "step"
	case OpReset:
		return "reset"
	case OpRepeat:
		return "repeat"
	case OpNext:
		return "next"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is one driver event. Only the fields relevant to Op are read.
type Command struct {
	Op    Op
	Kind  algo.Kind
	Times int
	Delta int
}

func SelectCmd(kind algo.Kind) Command { return Command{Op: OpSelect, Kind: kind} }

// StepCmd steps times times; zero means the current repeat count.
func StepCmd(times int) Command { return Command{Op: OpStep, Times: times} }

func ResetCmd() Command { return Command{Op: OpReset} }

func RepeatCmd(delta int) Command { return Command{Op: OpRepeat, Delta: delta} }

func NextCmd() Command { return Command{Op: OpNext} }

// Apply executes cmd against the registry. A rejected command leaves every
// engine unchanged.
func (r *Registry) Apply(cmd Command) error {
	switch cmd.Op {
	case OpSelect:
		return r.Select(cmd.Kind)
	case OpStep:
		times := cmd.Times
		if times == 0 {
			times = r.repeat
		}
		return r.StepActive(times)
	case OpReset:
		r.ResetActive()
	case OpRepeat:
		r.AdjustRepeat(cmd.Delta)
	case OpNext:
		r.Next()
	default:
		return fmt.Errorf("registry: unsupported command %s", cmd.Op)
	}
	return nil
}
