package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()

	assert.Equal(t, lipgloss.Color("#1976d2"), theme.Role(tokens.RolePrimary).Main)
	assert.Equal(t, lipgloss.Color("#6930ca"), theme.Role(tokens.RoleSecondary).Main)
	assert.Equal(t, lipgloss.Color("#6930ca"), theme.Stepper.Active)
	assert.Equal(t, lipgloss.Color("#9e9e9e"), theme.Stepper.Number)
	assert.Equal(t, lipgloss.Color("#bdbdbd"), theme.Stepper.Connector)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 1, theme.Spacing.Padding[SpacingSizeSmall])
	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSizeMedium])

	assert.True(t, theme.Typography.Title.GetBold())
	assert.True(t, theme.Typography.LabelActive.GetBold())
	assert.False(t, theme.Dark)
}

func TestDarkTheme(t *testing.T) {
	t.Parallel()
	light := DefaultTheme()
	dark := DarkTheme()

	assert.True(t, dark.Dark)
	assert.NotEqual(t, light.Text, dark.Text)
	assert.Equal(t, light.Stepper.Active, dark.Stepper.Active, "fills come from tokens in both modes")
	assert.NotEqual(t, light.Typography.Base.GetForeground(), dark.Typography.Base.GetForeground())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()
	assert.True(t, ThemeByName("dark", nil).Dark)
	assert.False(t, ThemeByName("light", nil).Dark)
	assert.False(t, ThemeByName("", nil).Dark)
}

func TestThemeFollowsTokenOverrides(t *testing.T) {
	t.Parallel()

	table, err := tokens.Parse("tokens.yaml", []byte(`
colors:
  primary:
    main: "#000000"
stepper_colors:
  connector: "#123456"
`))
	require.NoError(t, err)

	theme := NewTheme(table)
	assert.Equal(t, lipgloss.Color("#000000"), theme.Role(tokens.RolePrimary).Main)
	assert.Equal(t, lipgloss.Color("#bad6f2"), theme.Role(tokens.RolePrimary).Focus, "unset shades keep defaults")
	assert.Equal(t, lipgloss.Color("#123456"), theme.Stepper.Connector)
}

func TestRoleFallsBackToDefault(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()
	assert.Equal(t, theme.Role(tokens.RoleDefault), theme.Role(tokens.ColorRole("unknown")))
}

func TestWithRoleDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()
	base := DefaultTheme()
	custom := base.WithRole(tokens.RolePrimary, ColourSet{Main: lipgloss.Color("#ff0000")})

	assert.Equal(t, lipgloss.Color("#ff0000"), custom.Role(tokens.RolePrimary).Main)
	assert.Equal(t, lipgloss.Color("#1976d2"), base.Role(tokens.RolePrimary).Main)
}

func TestBorderForVariant(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderVariantDouble))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariantNone))
}

func TestSpacingLookupOutOfRange(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()
	assert.Equal(t, PaddingValue(theme, SpacingSizeMedium), PaddingValue(theme, SpacingSize(99)))
	assert.Equal(t, 0, MarginValue(theme, SpacingSizeNone))
}

func TestTypographyStyle(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()
	assert.True(t, TypographyStyle(theme, TypographyVariantEmphasis).GetBold())
	assert.True(t, TypographyStyle(theme, TypographyVariantCaption).GetItalic())
	assert.Equal(t, "NEXT", TypographyStyle(theme, TypographyVariantButton).Render("Next"))
}

func TestStyleFuncs(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()

	style := Background(tokens.RoleSecondary)(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.Color("#6930ca"), style.GetBackground())
	assert.Equal(t, lipgloss.Color("#ffffff"), style.GetForeground())

	style = Foreground(tokens.RoleError)(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.Color("#d32f2f"), style.GetForeground())

	style = PaddingX(SpacingSizeMedium)(lipgloss.NewStyle(), theme)
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, 0, style.GetPaddingTop())
}
