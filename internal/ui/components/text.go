package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// CaptionText creates the small muted text used under step labels.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// LabelText creates a step label, bold when active.
func LabelText(content string, active bool) *Text {
	if active {
		return NewText(content).WithAppliers(Typography(TypographyVariantLabelActive))
	}
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}

// BodyText creates body text.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}
