package tokens

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

// Load reads a YAML override document and merges it over the default
// tokens. Fields left out of the document keep their default value.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stepkiterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse merges an in-memory YAML override document over the defaults.
// The path is only used for error reporting. Keys present in the document
// win, including explicit zero values; absent keys keep their default.
func Parse(path string, data []byte) (*Table, error) {
	merged := defaultSpec()
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return nil, stepkiterrors.NewParseError(path, config.ExtractLine(err), err)
	}

	// Map entries are decoded into fresh values, so partial role overrides
	// are replayed over the default entry.
	var roles roleOverrides
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, stepkiterrors.NewParseError(path, config.ExtractLine(err), err)
	}
	defaults := defaultSpec()
	for role, node := range roles.Colors {
		cur := defaults.Colors[role]
		if err := node.Decode(&cur); err != nil {
			return nil, stepkiterrors.NewParseError(path, node.Line, err)
		}
		merged.Colors[role] = cur
	}
	for role, node := range roles.Sizes {
		cur := defaults.Sizes[role]
		if err := node.Decode(&cur); err != nil {
			return nil, stepkiterrors.NewParseError(path, node.Line, err)
		}
		merged.Sizes[role] = cur
	}

	if err := validateSpec(merged); err != nil {
		return nil, err
	}
	return NewTable(merged), nil
}

type roleOverrides struct {
	Colors map[ColorRole]yaml.Node `yaml:"colors"`
	Sizes  map[SizeRole]yaml.Node  `yaml:"sizes"`
}

func validateSpec(spec Spec) error {
	for role := range spec.Colors {
		if !knownColorRole(role) {
			return stepkiterrors.NewValidationError("colors."+string(role), "unknown colour role", nil)
		}
	}
	for role := range spec.Sizes {
		if !knownSizeRole(role) {
			return stepkiterrors.NewValidationError("sizes."+string(role), "unknown size role", nil)
		}
	}

	if err := config.GetValidator().Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return stepkiterrors.NewValidationError(config.FieldPath(first), fmt.Sprintf("failed %q check", first.Tag()), err)
		}
		return stepkiterrors.NewValidationError("", err.Error(), err)
	}
	return nil
}

func knownColorRole(role ColorRole) bool {
	for _, r := range ColorRoles() {
		if r == role {
			return true
		}
	}
	return false
}

func knownSizeRole(role SizeRole) bool {
	for _, r := range SizeRoles() {
		if r == role {
			return true
		}
	}
	return false
}
