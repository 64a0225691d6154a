package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

const checkoutFlow = `version: "1.0"
name: "Checkout"
layout:
  orientation: horizontal
  alignment: center
  mobile_variant: progress
  show_optional: true
buttons:
  next: "Onward"
active: 1
tokens: tokens.yaml
steps:
  - label: "Cart"
    completed: true
  - label: "Shipping"
    optional: "Optional"
    content: "# Shipping\nPick a carrier."
  - label: "Payment"
    error: true
    icon: "$"
`

func TestParseFlow(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: [1, 0]
name: "Broken"
steps:
  - label: missing
`

	missingSteps := `version: "1.0"
name: "No Steps"
`

	badVersion := `version: "beta"
name: "Bad Version"
steps:
  - label: "A"
`

	blankLabel := `version: "1.0"
name: "Blank"
steps:
  - label: "A"
  - label: "   "
`

	badOrientation := `version: "1.0"
name: "Diagonal"
layout:
  orientation: diagonal
steps:
  - label: "A"
`

	allDisabled := `version: "1.0"
name: "Stuck"
steps:
  - label: "A"
    disabled: true
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, flow *Flow, err error)
	}{
		{
			name:     "valid flow is parsed",
			contents: checkoutFlow,
			assert: func(t *testing.T, flow *Flow, err error) {
				require.NoError(t, err)
				require.NotNil(t, flow)
				require.Equal(t, "Checkout", flow.Name)
				require.Len(t, flow.Steps, 3)
				require.Equal(t, 1, flow.Active)
				require.Equal(t, "center", flow.Layout.Alignment)
				require.Equal(t, "progress", flow.Layout.MobileVariant)
				require.True(t, flow.Layout.ShowOptional)
				require.Equal(t, "Onward", flow.Buttons.Next)
				require.True(t, flow.Steps[2].Error)
				require.Equal(t, "tokens.yaml", filepath.Base(flow.Tokens))
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, flow *Flow, err error) {
				var parseErr *stepkiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing steps returns validation error",
			contents: missingSteps,
			assert: func(t *testing.T, flow *Flow, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "steps", validationErr.Field)
			},
		},
		{
			name:     "version must be semver",
			contents: badVersion,
			assert: func(t *testing.T, flow *Flow, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "version")
			},
		},
		{
			name:     "blank label is rejected",
			contents: blankLabel,
			assert: func(t *testing.T, flow *Flow, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "steps[1].label", validationErr.Field)
				require.Contains(t, validationErr.Message, "step_label")
			},
		},
		{
			name:     "unknown orientation is rejected",
			contents: badOrientation,
			assert: func(t *testing.T, flow *Flow, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "layout.orientation", validationErr.Field)
			},
		},
		{
			name:     "fully disabled flow is rejected",
			contents: allDisabled,
			assert: func(t *testing.T, flow *Flow, err error) {
				var validationErr *stepkiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "disabled")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFlow(t, tc.contents)
			flow, err := ParseFlow(path)
			tc.assert(t, flow, err)
		})
	}
}

func TestParseFlowMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseFlow(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *stepkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseFlowResolvesTokensPath(t *testing.T) {
	t.Parallel()

	path := writeTempFlow(t, checkoutFlow)
	flow, err := ParseFlow(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(path), "tokens.yaml"), flow.Tokens)

	flow, err = ParseFlowBytes("inline", []byte(checkoutFlow))
	require.NoError(t, err)
	require.Equal(t, "tokens.yaml", flow.Tokens)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ExtractLine(nil))
	require.Equal(t, 0, ExtractLine(errors.New("no position")))
	require.Equal(t, 12, ExtractLine(errors.New("yaml: line 12: did not find expected key")))
}

func writeTempFlow(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestValidationErrorsUseDocumentKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseFlowBytes("flow.yaml", []byte(`version: "1.0"
name: "Variant"
layout:
  mobile_variant: stripes
steps:
  - label: "A"
`))
	var validationErr *stepkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "layout.mobile_variant", validationErr.Field)
	require.Contains(t, validationErr.Message, "oneof")
}
