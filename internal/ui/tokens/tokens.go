// Package tokens defines the named design tokens (colours, sizes, stepper
// metrics) that components resolve at render time.
//
// A Table is immutable once built. Construct it once per process with
// Default or Load and pass it by reference; nothing in this package mutates
// a Table after construction.
package tokens

import (
	"fmt"
	"sort"
)

// ColorRole names a semantic colour slot.
type ColorRole string

const (
	RolePrimary   ColorRole = "primary"
	RoleSecondary ColorRole = "secondary"
	RoleError     ColorRole = "error"
	RoleWarning   ColorRole = "warning"
	RoleInfo      ColorRole = "info"
	RoleSuccess   ColorRole = "success"
	RoleDefault   ColorRole = "default"
)

// ColorRoles lists every role in display order.
func ColorRoles() []ColorRole {
	return []ColorRole{RolePrimary, RoleSecondary, RoleError, RoleWarning, RoleInfo, RoleSuccess, RoleDefault}
}

// ColorTokens are the interaction shades of one role. Translucent Figma
// overlays are stored flattened over a white surface.
type ColorTokens struct {
	Main     string `yaml:"main" validate:"required,hexcolor"`
	Hover    string `yaml:"hover" validate:"required,hexcolor"`
	Focus    string `yaml:"focus" validate:"required,hexcolor"`
	Border   string `yaml:"border" validate:"required,hexcolor"`
	Disabled string `yaml:"disabled" validate:"required,hexcolor"`
}

// SizeRole names a component size.
type SizeRole string

const (
	SizeSmall  SizeRole = "small"
	SizeMedium SizeRole = "medium"
	SizeLarge  SizeRole = "large"
)

// SizeRoles lists every size in ascending order.
func SizeRoles() []SizeRole {
	return []SizeRole{SizeSmall, SizeMedium, SizeLarge}
}

// SizeTokens are pixel dimensions for icons and badges.
type SizeTokens struct {
	Size        int `yaml:"size" validate:"min=1"`
	IconSize    int `yaml:"icon_size" validate:"min=1"`
	FocusRipple int `yaml:"focus_ripple" validate:"min=1"`
	Padding     int `yaml:"padding" validate:"min=0"`
}

// StepperSizes are the stepper metrics in pixels.
type StepperSizes struct {
	IconSize           int `yaml:"icon_size" validate:"min=1"`
	ConnectorHeight    int `yaml:"connector_height" validate:"min=1"`
	ConnectorWidth     int `yaml:"connector_width" validate:"min=1"`
	MinConnectorHeight int `yaml:"min_connector_height" validate:"min=1"`
	LabelGap           int `yaml:"label_gap" validate:"min=0"`
	VerticalGap        int `yaml:"vertical_gap" validate:"min=0"`
}

// StepperColors are the stepper-specific colour slots.
type StepperColors struct {
	ActiveBackground    string `yaml:"active_background" validate:"required,hexcolor"`
	CompletedBackground string `yaml:"completed_background" validate:"required,hexcolor"`
	NumBackground       string `yaml:"num_background" validate:"required,hexcolor"`
	NumText             string `yaml:"num_text" validate:"required,hexcolor"`
	Connector           string `yaml:"connector" validate:"required,hexcolor"`
	ActiveText          string `yaml:"active_text" validate:"required,hexcolor"`
	CompletedText       string `yaml:"completed_text" validate:"required,hexcolor"`
	InactiveText        string `yaml:"inactive_text" validate:"required,hexcolor"`
	OptionalText        string `yaml:"optional_text" validate:"required,hexcolor"`
}

// Terminal cells are coarser than pixels. A column is taken as 8 px wide
// and a row as 24 px tall.
const (
	PixelsPerColumn = 8
	PixelsPerRow    = 24
)

// Columns converts a pixel width to terminal columns, never below 1.
func Columns(px int) int {
	return atLeastOne(px / PixelsPerColumn)
}

// Rows converts a pixel height to terminal rows, never below 1.
func Rows(px int) int {
	return atLeastOne(px / PixelsPerRow)
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// Table is the resolved, read-only token set.
type Table struct {
	colors  map[ColorRole]ColorTokens
	sizes   map[SizeRole]SizeTokens
	stepper StepperSizes
	palette StepperColors
	narrow  int
}

// Spec is the plain-data form of a Table, used for construction and for
// YAML documents.
type Spec struct {
	Colors        map[ColorRole]ColorTokens `yaml:"colors" validate:"omitempty,dive"`
	Sizes         map[SizeRole]SizeTokens   `yaml:"sizes" validate:"omitempty,dive"`
	Stepper       StepperSizes              `yaml:"stepper"`
	StepperColors StepperColors             `yaml:"stepper_colors"`
	// NarrowBreakpoint is the sm breakpoint in pixels.
	NarrowBreakpoint int `yaml:"narrow_breakpoint" validate:"min=1"`
}

// NewTable copies spec into an immutable Table. Missing roles are filled
// from the default token set.
func NewTable(spec Spec) *Table {
	defaults := defaultSpec()

	t := &Table{
		colors:  make(map[ColorRole]ColorTokens, len(defaults.Colors)),
		sizes:   make(map[SizeRole]SizeTokens, len(defaults.Sizes)),
		stepper: spec.Stepper,
		palette: spec.StepperColors,
		narrow:  spec.NarrowBreakpoint,
	}
	for role, c := range defaults.Colors {
		t.colors[role] = c
	}
	for role, c := range spec.Colors {
		t.colors[role] = c
	}
	for role, s := range defaults.Sizes {
		t.sizes[role] = s
	}
	for role, s := range spec.Sizes {
		t.sizes[role] = s
	}
	if t.stepper == (StepperSizes{}) {
		t.stepper = defaults.Stepper
	}
	if t.palette == (StepperColors{}) {
		t.palette = defaults.StepperColors
	}
	if t.narrow <= 0 {
		t.narrow = defaults.NarrowBreakpoint
	}
	return t
}

// Color resolves a role. Unknown roles report false.
func (t *Table) Color(role ColorRole) (ColorTokens, bool) {
	c, ok := t.colors[role]
	return c, ok
}

// ColorOrDefault resolves a role, falling back to RoleDefault.
func (t *Table) ColorOrDefault(role ColorRole) ColorTokens {
	if c, ok := t.colors[role]; ok {
		return c
	}
	return t.colors[RoleDefault]
}

// Size resolves a size role. Unknown roles report false.
func (t *Table) Size(role SizeRole) (SizeTokens, bool) {
	s, ok := t.sizes[role]
	return s, ok
}

// SizeOrDefault resolves a size role, falling back to SizeMedium.
func (t *Table) SizeOrDefault(role SizeRole) SizeTokens {
	if s, ok := t.sizes[role]; ok {
		return s
	}
	return t.sizes[SizeMedium]
}

// Stepper returns the stepper metrics.
func (t *Table) Stepper() StepperSizes {
	return t.stepper
}

// StepperColors returns the stepper colour slots.
func (t *Table) StepperColors() StepperColors {
	return t.palette
}

// NarrowBreakpoint returns the narrow viewport threshold in pixels.
func (t *Table) NarrowBreakpoint() int {
	return t.narrow
}

// NarrowColumns returns the narrow viewport threshold in terminal columns.
func (t *Table) NarrowColumns() int {
	return Columns(t.narrow)
}

// Spec returns a deep copy of the table contents.
func (t *Table) Spec() Spec {
	spec := Spec{
		Colors:           make(map[ColorRole]ColorTokens, len(t.colors)),
		Sizes:            make(map[SizeRole]SizeTokens, len(t.sizes)),
		Stepper:          t.stepper,
		StepperColors:    t.palette,
		NarrowBreakpoint: t.narrow,
	}
	for role, c := range t.colors {
		spec.Colors[role] = c
	}
	for role, s := range t.sizes {
		spec.Sizes[role] = s
	}
	return spec
}

// Describe renders a stable, human readable dump of the table.
func (t *Table) Describe() []string {
	lines := make([]string, 0, len(t.colors)+len(t.sizes)+4)

	roles := make([]string, 0, len(t.colors))
	for role := range t.colors {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)
	for _, role := range roles {
		c := t.colors[ColorRole(role)]
		lines = append(lines, fmt.Sprintf("color.%s main=%s hover=%s focus=%s border=%s disabled=%s",
			role, c.Main, c.Hover, c.Focus, c.Border, c.Disabled))
	}

	for _, role := range SizeRoles() {
		s, ok := t.sizes[role]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("size.%s size=%dpx icon=%dpx ripple=%dpx padding=%dpx",
			role, s.Size, s.IconSize, s.FocusRipple, s.Padding))
	}

	st := t.stepper
	lines = append(lines, fmt.Sprintf("stepper icon=%dpx connector=%dx%dpx min_connector=%dpx label_gap=%dpx vertical_gap=%dpx",
		st.IconSize, st.ConnectorWidth, st.ConnectorHeight, st.MinConnectorHeight, st.LabelGap, st.VerticalGap))
	lines = append(lines, fmt.Sprintf("breakpoint.narrow=%dpx (%d cols)", t.narrow, t.NarrowColumns()))
	return lines
}
