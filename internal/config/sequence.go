package config

import (
	"github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

// Sequence builds the step model described by the flow.
func (f *Flow) Sequence() (*stepper.Sequence, error) {
	descriptors := make([]stepper.StepDescriptor, len(f.Steps))
	for i, step := range f.Steps {
		descriptors[i] = step.Descriptor()
	}

	seq, err := stepper.NewSequence(descriptors...)
	if err != nil {
		return nil, stepkiterrors.NewFlowError(f.Name, err)
	}
	return seq, nil
}

// Descriptor converts the document form of a step to the model form.
func (s StepSpec) Descriptor() stepper.StepDescriptor {
	d := stepper.StepDescriptor{
		Label:        s.Label,
		OptionalNote: s.Optional,
		Completed:    s.Completed,
		Disabled:     s.Disabled,
		Error:        s.Error,
	}
	if s.Icon != "" {
		d.Icon = ui.Static(s.Icon)
	}
	return d
}

// Contents returns the markdown content of every step, indexed like Steps.
func (f *Flow) Contents() []string {
	out := make([]string, len(f.Steps))
	for i, step := range f.Steps {
		out[i] = step.Content
	}
	return out
}
