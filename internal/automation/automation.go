package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/registry"
)

// Scenario is a scripted sequence of driver commands against one registry.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Size        int            `yaml:"size"`
	Seed        int64          `yaml:"seed"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep holds exactly one action.
type ScenarioStep struct {
	Select    string `yaml:"select,omitempty"`
	Step      int    `yaml:"step,omitempty"`
	Reset     bool   `yaml:"reset,omitempty"`
	Repeat    int    `yaml:"repeat,omitempty"`
	Next      bool   `yaml:"next,omitempty"`
	UntilDone bool   `yaml:"until_done,omitempty"`
}

// Checkpoint is the active engine's state after a scenario step.
type Checkpoint struct {
	Index  int
	Action string
	State  algo.RenderState
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrap(err, "parse scenario")
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if s.Size < 0 {
		return errors.Errorf("size must not be negative, got %d", s.Size)
	}
	for i, step := range s.Steps {
		if _, err := step.command(); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

func (st ScenarioStep) actions() int {
	n := 0
	for _, set := range []bool{st.Select != "", st.Step != 0, st.Reset, st.Repeat != 0, st.Next, st.UntilDone} {
		if set {
			n++
		}
	}
	return n
}

// command maps the step to a registry command. until_done is reported as a
// step command with zero Times and handled by RunScenario.
func (st ScenarioStep) command() (registry.Command, error) {
	if n := st.actions(); n != 1 {
		return registry.Command{}, errors.Errorf("expected exactly one action, got %d", n)
	}
	switch {
	case st.Select != "":
		kind, err := algo.ParseKind(st.Select)
		if err != nil {
			return registry.Command{}, err
		}
		return registry.SelectCmd(kind), nil
	case st.Step != 0:
		if st.Step < 0 {
			return registry.Command{}, errors.Errorf("step count must be positive, got %d", st.Step)
		}
		return registry.StepCmd(st.Step), nil
	case st.Reset:
		return registry.ResetCmd(), nil
	case st.Repeat != 0:
		return registry.RepeatCmd(st.Repeat), nil
	case st.Next:
		return registry.NextCmd(), nil
	default:
		return registry.StepCmd(0), nil
	}
}

func (st ScenarioStep) String() string {
	switch {
	case st.Select != "":
		return "select " + st.Select
	case st.Step != 0:
		return fmt.Sprintf("step %d", st.Step)
	case st.Reset:
		return "reset"
	case st.Repeat != 0:
		return fmt.Sprintf("repeat %+d", st.Repeat)
	case st.Next:
		return "next"
	default:
		return "until done"
	}
}

// RunScenario executes all steps in a scenario against a fresh registry
// seeded from the scenario, recording a checkpoint after each one.
func RunScenario(ctx context.Context, scenario *Scenario, log logrus.FieldLogger) ([]Checkpoint, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	opts := []registry.Option{registry.WithRand(rand.New(rand.NewSource(scenario.Seed)))}
	if log != nil {
		opts = append(opts, registry.WithLogger(log))
	}
	reg := registry.New(scenario.Size, opts...)

	checkpoints := make([]Checkpoint, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return checkpoints, ctx.Err()
		default:
		}

		cmd, _ := step.command()
		if step.UntilDone {
			cmd = registry.StepCmd(algo.MaxSteps(scenario.Size))
		}
		if err := reg.Apply(cmd); err != nil {
			return checkpoints, errors.Wrapf(err, "step %d (%s)", i+1, step)
		}
		if log != nil {
			log.WithFields(logrus.Fields{"step": i + 1, "action": step.String(), "algo": reg.Active()}).Debug("scenario step")
		}
		checkpoints = append(checkpoints, Checkpoint{Index: i + 1, Action: step.String(), State: reg.RenderActive()})
	}
	return checkpoints, nil
}
