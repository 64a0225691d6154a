// Package components is a small theme-aware component kit for terminal
// rendering, built on lipgloss.
//
// Themes are resolved from a design token table (see package tokens) and
// passed explicitly through RenderContext, so there is no global theme:
//
//	theme := components.NewTheme(table)
//	out := component.ViewWithContext(components.DefaultContext().WithTheme(theme))
//
// View() renders with the default theme.
//
// Components take StyleFunc modifiers through WithAppliers. Modifiers read
// their values from the theme at render time:
//
//	badge := components.NewBadge("1").WithAppliers(
//		components.Background(tokens.RoleSecondary),
//		components.PaddingX(components.SpacingSizeSmall),
//	)
//
// The kit covers what the stepper presenters draw with: Text, Badge,
// Button, Divider and Stack.
package components
