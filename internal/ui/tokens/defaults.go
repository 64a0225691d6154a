package tokens

import "sync"

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared Figma token table. It is built once.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(defaultSpec())
	})
	return defaultTable
}

func defaultSpec() Spec {
	return Spec{
		Colors: map[ColorRole]ColorTokens{
			RolePrimary: {
				Main: "#1976d2", Hover: "#f6fafd", Focus: "#bad6f2", Border: "#8cbae8", Disabled: "#a8cbee",
			},
			RoleSecondary: {
				Main: "#6930ca", Hover: "#f9f7fd", Focus: "#d2c1ef", Border: "#b498e4", Disabled: "#c6b0eb",
			},
			RoleError: {
				Main: "#d32f2f", Hover: "#fdf7f7", Focus: "#f2c1c1", Border: "#e99797", Disabled: "#eeb0b0",
			},
			RoleWarning: {
				Main: "#ef6c00", Hover: "#fef9f5", Focus: "#fad3b2", Border: "#f7b680", Disabled: "#f9c79e",
			},
			RoleInfo: {
				Main: "#0288d1", Hover: "#f5fafd", Focus: "#b3dbf1", Border: "#80c4e8", Disabled: "#9fd2ee",
			},
			RoleSuccess: {
				Main: "#2e7d32", Hover: "#f7faf7", Focus: "#c0d8c2", Border: "#96be98", Disabled: "#b0ceb1",
			},
			RoleDefault: {
				Main: "#6b6c7b", Hover: "#f5f5f5", Focus: "#e0e0e0", Border: "#707070", Disabled: "#9e9e9e",
			},
		},
		Sizes: map[SizeRole]SizeTokens{
			SizeSmall:  {Size: 20, IconSize: 15, FocusRipple: 34, Padding: 9},
			SizeMedium: {Size: 24, IconSize: 18, FocusRipple: 38, Padding: 9},
			SizeLarge:  {Size: 28, IconSize: 21, FocusRipple: 42, Padding: 9},
		},
		Stepper: StepperSizes{
			IconSize:           24,
			ConnectorHeight:    1,
			ConnectorWidth:     1,
			MinConnectorHeight: 24,
			LabelGap:           8,
			VerticalGap:        16,
		},
		StepperColors: StepperColors{
			ActiveBackground:    "#6930ca",
			CompletedBackground: "#6930ca",
			NumBackground:       "#9e9e9e",
			NumText:             "#ffffff",
			Connector:           "#bdbdbd",
			ActiveText:          "#212121",
			CompletedText:       "#212121",
			InactiveText:        "#666666",
			OptionalText:        "#666666",
		},
		NarrowBreakpoint: 600,
	}
}
