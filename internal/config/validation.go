package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

// ValidateFlow performs schema validation on a flow document.
func ValidateFlow(flow *Flow) error {
	if flow == nil {
		return stepkiterrors.NewValidationError("flow", "flow is nil", nil)
	}

	if err := validatorInstance().Struct(flow); err != nil {
		return convertValidationError(err)
	}

	// More than one step may start in the error state, but a flow that is
	// entirely disabled cannot be navigated.
	disabled := 0
	for _, step := range flow.Steps {
		if step.Disabled {
			disabled++
		}
	}
	if disabled == len(flow.Steps) {
		return stepkiterrors.NewValidationError("steps", "every step is disabled", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into stepkit validation errors.
func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := FieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stepkiterrors.NewValidationError(field, msg, err)
	}

	return stepkiterrors.NewValidationError("flow", err.Error(), err)
}

// FieldPath is the document path of a failed field, e.g. "steps[1].label"
// for Flow.Steps[1].Label. Segments use the yaml or mapstructure key.
func FieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}
