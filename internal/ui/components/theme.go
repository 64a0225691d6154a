package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin, in cells.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCaption
	TypographyVariantLabel
	TypographyVariantLabelActive
	TypographyVariantButton
	TypographyVariantStepNumber
	TypographyVariantEmphasis
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
	BorderVariantHidden
)

// ColourSet is one semantic colour role resolved to terminal colours.
//
//   - Main: the role colour itself
//   - OnMain: text drawn on top of Main
//   - Hover, Focus: interaction tints
//   - Border: outline colour
//   - Disabled: muted form of Main
type ColourSet struct {
	Main     lipgloss.Color
	OnMain   lipgloss.Color
	Hover    lipgloss.Color
	Focus    lipgloss.Color
	Border   lipgloss.Color
	Disabled lipgloss.Color
}

// StepperPalette holds the colours specific to stepper rendering.
type StepperPalette struct {
	Active        lipgloss.Color
	Completed     lipgloss.Color
	Number        lipgloss.Color
	NumberText    lipgloss.Color
	Connector     lipgloss.Color
	ActiveText    lipgloss.Color
	CompletedText lipgloss.Color
	InactiveText  lipgloss.Color
	OptionalText  lipgloss.Color
	DisabledText  lipgloss.Color
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Hidden  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Caption     lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Button      lipgloss.Style
	StepNumber  lipgloss.Style
	Emphasis    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme resolved from a token table.
// Modification helpers return new values; a Theme is passed by value
// inside RenderContext and never stored globally.
type Theme struct {
	Tokens     *tokens.Table
	Dark       bool
	Text       lipgloss.Color
	TextMuted  lipgloss.Color
	Stepper    StepperPalette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry

	roles map[tokens.ColorRole]ColourSet
}

// NewTheme resolves a light theme from table. A nil table means
// tokens.Default().
func NewTheme(table *tokens.Table) Theme {
	return buildTheme(table, false)
}

// NewDarkTheme resolves a dark theme from table.
func NewDarkTheme(table *tokens.Table) Theme {
	return buildTheme(table, true)
}

// DefaultTheme returns the light theme over the default tokens.
func DefaultTheme() Theme {
	return NewTheme(tokens.Default())
}

// DarkTheme returns the dark theme over the default tokens.
func DarkTheme() Theme {
	return NewDarkTheme(tokens.Default())
}

// ThemeByName resolves "dark" to the dark theme and anything else to light.
func ThemeByName(name string, table *tokens.Table) Theme {
	if name == "dark" {
		return NewDarkTheme(table)
	}
	return NewTheme(table)
}

func buildTheme(table *tokens.Table, dark bool) Theme {
	if table == nil {
		table = tokens.Default()
	}

	roles := make(map[tokens.ColorRole]ColourSet, len(tokens.ColorRoles()))
	for _, role := range tokens.ColorRoles() {
		c := table.ColorOrDefault(role)
		roles[role] = ColourSet{
			Main:     lipgloss.Color(c.Main),
			OnMain:   lipgloss.Color("#ffffff"),
			Hover:    lipgloss.Color(c.Hover),
			Focus:    lipgloss.Color(c.Focus),
			Border:   lipgloss.Color(c.Border),
			Disabled: lipgloss.Color(c.Disabled),
		}
	}

	sc := table.StepperColors()
	stepperPalette := StepperPalette{
		Active:        lipgloss.Color(sc.ActiveBackground),
		Completed:     lipgloss.Color(sc.CompletedBackground),
		Number:        lipgloss.Color(sc.NumBackground),
		NumberText:    lipgloss.Color(sc.NumText),
		Connector:     lipgloss.Color(sc.Connector),
		ActiveText:    lipgloss.Color(sc.ActiveText),
		CompletedText: lipgloss.Color(sc.CompletedText),
		InactiveText:  lipgloss.Color(sc.InactiveText),
		OptionalText:  lipgloss.Color(sc.OptionalText),
		DisabledText:  roles[tokens.RoleDefault].Disabled,
	}

	text := lipgloss.Color("#212121")
	muted := lipgloss.Color("#666666")
	if dark {
		text = lipgloss.Color("#f5f5f5")
		muted = lipgloss.Color("#bdbdbd")
		stepperPalette.ActiveText = text
		stepperPalette.CompletedText = text
		stepperPalette.InactiveText = muted
		stepperPalette.OptionalText = muted
	}

	theme := Theme{
		Tokens:    table,
		Dark:      dark,
		Text:      text,
		TextMuted: muted,
		Stepper:   stepperPalette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
			Hidden:  lipgloss.HiddenBorder(),
		},
		Spacing:  spacingFromTokens(table),
		Variants: NewVariantRegistry(),
		roles:    roles,
	}
	theme.Typography = defaultTypography(text, muted, stepperPalette)

	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)

	return theme
}

// spacingFromTokens scales the medium component padding into cells and
// builds the rest of the scale around it.
func spacingFromTokens(table *tokens.Table) SpacingConfig {
	unit := tokens.Columns(table.SizeOrDefault(tokens.SizeMedium).Padding)
	scale := spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: unit,
		SpacingSizeSmall:      unit,
		SpacingSizeMedium:     unit * 2,
		SpacingSizeLarge:      unit * 3,
		SpacingSizeExtraLarge: unit * 4,
	}
	return SpacingConfig{Padding: scale, Margin: scale}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantText, NewCompositeStrategy(
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantButton),
	))
	registry.Register(ButtonVariantContained, NewCompositeStrategy(
		PaddingX(SpacingSizeMedium),
		Typography(TypographyVariantButton),
	))
	registry.Register(ButtonVariantOutlined, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Border(BorderVariantRounded),
		Typography(TypographyVariantButton),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantFilled, NewCompositeStrategy(
		PaddingX(SpacingSizeExtraSmall),
		Typography(TypographyVariantStepNumber),
	))
	registry.Register(BadgeVariantOutlined, NewCompositeStrategy(
		Typography(TypographyVariantStepNumber),
	))
}

func defaultTypography(text, muted lipgloss.Color, sp StepperPalette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(text)

	return TypographyScale{
		Base:        base,
		Title:       base.Bold(true),
		Subtitle:    base.Foreground(muted),
		Body:        base,
		Caption:     lipgloss.NewStyle().Foreground(sp.OptionalText).Italic(true),
		Label:       lipgloss.NewStyle().Foreground(sp.InactiveText),
		LabelActive: lipgloss.NewStyle().Foreground(sp.ActiveText).Bold(true),
		Button:      lipgloss.NewStyle().Bold(true).Transform(strings.ToUpper),
		StepNumber:  lipgloss.NewStyle().Bold(true),
		Emphasis:    base.Bold(true),
	}
}

// Role returns the colour set for role, falling back to the default role.
func (t Theme) Role(role tokens.ColorRole) ColourSet {
	if cs, ok := t.roles[role]; ok {
		return cs
	}
	if cs, ok := t.roles[tokens.RoleDefault]; ok {
		return cs
	}
	return NewTheme(nil).roles[tokens.RoleDefault]
}

// Table returns the token table the theme was built from.
func (t Theme) Table() *tokens.Table {
	if t.Tokens == nil {
		return tokens.Default()
	}
	return t.Tokens
}

// WithRole returns a copy of the theme with role replaced.
func (t Theme) WithRole(role tokens.ColorRole, cs ColourSet) Theme {
	roles := make(map[tokens.ColorRole]ColourSet, len(t.roles)+1)
	for k, v := range t.roles {
		roles[k] = v
	}
	roles[role] = cs
	t.roles = roles
	return t
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantHidden:
		return theme.Borders.Hidden
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantLabelActive:
		return typo.LabelActive
	case TypographyVariantButton:
		return typo.Button
	case TypographyVariantStepNumber:
		return typo.StepNumber
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

// Fluent modifier functions

// Background applies a role's main colour as background and its on-main
// colour as foreground.
//
// Example:
//
//	badge := NewBadge("1").WithAppliers(Background(tokens.RoleSecondary))
func Background(role tokens.ColorRole) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := theme.Role(role)
		return base.Background(cs.Main).Foreground(cs.OnMain)
	}
}

// Foreground applies a role's main colour to text.
func Foreground(role tokens.ColorRole) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Role(role).Main)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
