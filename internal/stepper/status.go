package stepper

import "github.com/alexisbeaulieu97/stepkit/internal/ui"

// Status is the progression state of one step.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	default:
		return "inactive"
	}
}

// Visual is the state a presenter actually draws. It folds the error
// overlay into the progression status.
type Visual int

const (
	VisualInactive Visual = iota
	VisualActive
	VisualCompleted
	VisualError
)

func (v Visual) String() string {
	switch v {
	case VisualActive:
		return "active"
	case VisualCompleted:
		return "completed"
	case VisualError:
		return "error"
	default:
		return "inactive"
	}
}

// ViewState is the renderable projection of one step.
type ViewState struct {
	Index        int
	Label        string
	OptionalNote string
	Status       Status
	// HasError is an overlay, independent of Status.
	HasError bool
	Disabled bool
	Icon     ui.Renderable
}

// Visual returns the drawn state. An error always wins, including over a
// completed step.
func (v ViewState) Visual() Visual {
	if v.HasError {
		return VisualError
	}
	switch v.Status {
	case StatusActive:
		return VisualActive
	case StatusCompleted:
		return VisualCompleted
	default:
		return VisualInactive
	}
}

// Number is the 1-based position shown in numeric badges.
func (v ViewState) Number() int {
	return v.Index + 1
}
