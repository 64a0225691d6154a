package components

import (
	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent holds the raw style and the theme-aware strategy shared by
// every component.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy resolves a component's style against a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a style using values from a theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers runs appliers after the ones already set. The previous
// slice is never appended to in place.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	var funcs []StyleFunc
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs = existing.funcs
	}
	merged := make([]StyleFunc, 0, len(funcs)+len(appliers))
	merged = append(merged, funcs...)
	b.strategy = CompositeStrategy{funcs: append(merged, appliers...)}
}

// Constraints bound a component's rendered size in cells. Zero means
// unbounded.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// RenderContext carries the theme and layout information down the tree.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the available width in cells.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// AvailableWidth is the tightest known width bound, or 0 when unbounded.
func (r RenderContext) AvailableWidth() int {
	width := r.ParentWidth
	if r.Constraints.MaxWidth > 0 && (width <= 0 || r.Constraints.MaxWidth < width) {
		width = r.Constraints.MaxWidth
	}
	return width
}

// Render draws child with ctx when it understands contexts, or plainly otherwise.
func Render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
)
