package tokens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

func TestDefaultTable(t *testing.T) {
	t.Parallel()
	table := Default()
	require.Same(t, table, Default())

	primary, ok := table.Color(RolePrimary)
	require.True(t, ok)
	assert.Equal(t, "#1976d2", primary.Main)

	_, ok = table.Color(ColorRole("brand"))
	assert.False(t, ok)
	assert.Equal(t, "#6b6c7b", table.ColorOrDefault(ColorRole("brand")).Main)

	medium, ok := table.Size(SizeMedium)
	require.True(t, ok)
	assert.Equal(t, 24, medium.Size)
	assert.Equal(t, medium, table.SizeOrDefault(SizeRole("huge")))

	assert.Equal(t, 24, table.Stepper().IconSize)
	assert.Equal(t, "#6930ca", table.StepperColors().ActiveBackground)
	assert.Equal(t, 600, table.NarrowBreakpoint())
	assert.Equal(t, 75, table.NarrowColumns())
}

func TestPixelConversion(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, Columns(24))
	assert.Equal(t, 1, Columns(1))
	assert.Equal(t, 1, Columns(0))
	assert.Equal(t, 1, Rows(24))
	assert.Equal(t, 2, Rows(48))
	assert.Equal(t, 1, Rows(10))
}

func TestNewTableFillsMissingParts(t *testing.T) {
	t.Parallel()
	table := NewTable(Spec{Colors: map[ColorRole]ColorTokens{
		RolePrimary: {Main: "#000000", Hover: "#000000", Focus: "#000000", Border: "#000000", Disabled: "#000000"},
	}})

	assert.Equal(t, "#000000", table.ColorOrDefault(RolePrimary).Main)
	assert.Equal(t, "#6930ca", table.ColorOrDefault(RoleSecondary).Main)
	assert.Equal(t, Default().Stepper(), table.Stepper())
	assert.Equal(t, 600, table.NarrowBreakpoint())
}

func TestSpecIsACopy(t *testing.T) {
	t.Parallel()
	table := Default()
	spec := table.Spec()
	spec.Colors[RolePrimary] = ColorTokens{Main: "#ffffff"}
	assert.Equal(t, "#1976d2", table.ColorOrDefault(RolePrimary).Main)
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	lines := Default().Describe()
	require.NotEmpty(t, lines)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "color.primary main=#1976d2")
	assert.Contains(t, joined, "size.medium size=24px")
	assert.Contains(t, joined, "stepper icon=24px")
	assert.Equal(t, "breakpoint.narrow=600px (75 cols)", lines[len(lines)-1])
	assert.Equal(t, lines, Default().Describe(), "output is stable")
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("partial override keeps defaults", func(t *testing.T) {
		t.Parallel()
		table, err := Parse("tokens.yaml", []byte(`
colors:
  secondary:
    main: "#111111"
stepper:
  icon_size: 32
narrow_breakpoint: 800
`))
		require.NoError(t, err)
		secondary := table.ColorOrDefault(RoleSecondary)
		assert.Equal(t, "#111111", secondary.Main)
		assert.Equal(t, "#f9f7fd", secondary.Hover)
		assert.Equal(t, 32, table.Stepper().IconSize)
		assert.Equal(t, 16, table.Stepper().VerticalGap)
		assert.Equal(t, 100, table.NarrowColumns())
	})

	t.Run("explicit zero overrides the default", func(t *testing.T) {
		t.Parallel()
		table, err := Parse("tokens.yaml", []byte(`
stepper:
  label_gap: 0
sizes:
  medium:
    padding: 0
`))
		require.NoError(t, err)
		assert.Equal(t, 0, table.Stepper().LabelGap)
		assert.Equal(t, 16, table.Stepper().VerticalGap)
		medium := table.SizeOrDefault(SizeMedium)
		assert.Equal(t, 0, medium.Padding)
		assert.Equal(t, Default().SizeOrDefault(SizeMedium).Size, medium.Size)
	})

	t.Run("empty document is the default table", func(t *testing.T) {
		t.Parallel()
		table, err := Parse("tokens.yaml", nil)
		require.NoError(t, err)
		assert.Equal(t, Default().Spec(), table.Spec())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("tokens.yaml", []byte("colors: [unclosed"))
		var parseErr *stepkiterrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "tokens.yaml", parseErr.Path)
	})

	t.Run("unknown role", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("tokens.yaml", []byte("colors:\n  brand:\n    main: \"#000000\"\n"))
		var validationErr *stepkiterrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "colors.brand", validationErr.Field)
	})

	t.Run("bad hex colour", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("tokens.yaml", []byte("stepper_colors:\n  connector: blue\n"))
		var validationErr *stepkiterrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "stepper_colors.connector", validationErr.Field)
		assert.Contains(t, err.Error(), "hexcolor")
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("narrow_breakpoint: 480\n"), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, table.NarrowColumns())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *stepkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
