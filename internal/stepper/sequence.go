// Package stepper is the framework-free model behind every stepper
// presenter: an ordered list of step descriptors and the pure mapping from
// (steps, active index) to per-step view states.
//
// The package never owns the active position. Callers pass it in on every
// call and decide for themselves how to react to navigation intents.
package stepper

import (
	"strings"

	"github.com/alexisbeaulieu97/stepkit/internal/ui"
)

// StepDescriptor describes one step.
type StepDescriptor struct {
	Label        string
	OptionalNote string
	Completed    bool
	Disabled     bool
	Error        bool
	// Icon replaces the numeric badge when set. Presenters position and
	// colour it but never draw it themselves.
	Icon ui.Renderable
}

// Sequence is an immutable, non-empty list of steps.
type Sequence struct {
	steps []StepDescriptor
}

// NewSequence validates and copies steps.
func NewSequence(steps ...StepDescriptor) (*Sequence, error) {
	if err := validate(steps); err != nil {
		return nil, err
	}
	clone := make([]StepDescriptor, len(steps))
	copy(clone, steps)
	return &Sequence{steps: clone}, nil
}

// MustSequence is NewSequence for fixtures and examples. It panics on error.
func MustSequence(steps ...StepDescriptor) *Sequence {
	seq, err := NewSequence(steps...)
	if err != nil {
		panic(err)
	}
	return seq
}

func validate(steps []StepDescriptor) error {
	if len(steps) == 0 {
		return &InvalidSequenceError{Index: -1, Reason: "no steps"}
	}
	for i, step := range steps {
		if strings.TrimSpace(step.Label) == "" {
			return &InvalidSequenceError{Index: i, Reason: "empty label"}
		}
	}
	return nil
}

// Len returns the number of steps, always at least 1.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the descriptors.
func (s *Sequence) Steps() []StepDescriptor {
	clone := make([]StepDescriptor, len(s.steps))
	copy(clone, s.steps)
	return clone
}

// Step returns the descriptor at the clamped index.
func (s *Sequence) Step(index int) StepDescriptor {
	return s.steps[s.Clamp(index)]
}

// Clamp pins index into [0, Len()-1].
func (s *Sequence) Clamp(index int) int {
	return clamp(index, len(s.steps))
}

// Contains reports whether index addresses a real step, without clamping.
func (s *Sequence) Contains(index int) bool {
	return index >= 0 && index < len(s.steps)
}

// ViewStates derives one view state per step for the given active index.
func (s *Sequence) ViewStates(activeIndex int) []ViewState {
	return viewStates(s.steps, s.Clamp(activeIndex))
}

// ComputeViewStates is the standalone form of Sequence.ViewStates. It
// rejects an empty or unlabelled step list with InvalidSequenceError.
func ComputeViewStates(steps []StepDescriptor, activeIndex int) ([]ViewState, error) {
	if err := validate(steps); err != nil {
		return nil, err
	}
	return viewStates(steps, clamp(activeIndex, len(steps))), nil
}

func viewStates(steps []StepDescriptor, active int) []ViewState {
	states := make([]ViewState, len(steps))
	for i, step := range steps {
		states[i] = ViewState{
			Index:        i,
			Label:        step.Label,
			OptionalNote: step.OptionalNote,
			Status:       statusFor(i, active, step.Completed),
			HasError:     step.Error,
			Disabled:     step.Disabled,
			Icon:         step.Icon,
		}
	}
	return states
}

func statusFor(index, active int, completed bool) Status {
	switch {
	case index < active || (completed && index != active):
		return StatusCompleted
	case index == active:
		return StatusActive
	default:
		return StatusInactive
	}
}

func clamp(index, total int) int {
	if total <= 0 || index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
