package components

import (
	"strings"

	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	if len(s.children) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	bounds := ctx.Constraints
	childCtx := ctx.WithConstraints(s.childConstraints(bounds))

	childViews := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			childViews = append(childViews, view)
		}
	}

	if len(childViews) == 0 {
		return s.ComputeStyle(ctx.Theme).Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(childViews)
	} else {
		content = s.joinVertical(childViews)
	}

	finalStyle := s.ComputeStyle(ctx.Theme)
	if bounds.MaxWidth > 0 {
		finalStyle = finalStyle.MaxWidth(bounds.MaxWidth)
	}
	if bounds.MaxHeight > 0 {
		finalStyle = finalStyle.MaxHeight(bounds.MaxHeight)
	}

	return finalStyle.Render(content)
}

// childConstraints splits a horizontal stack's width evenly after gaps.
func (s *Stack) childConstraints(bounds Constraints) Constraints {
	if s.direction != DirectionHorizontal || bounds.MaxWidth <= 0 {
		return bounds
	}
	available := bounds.MaxWidth - s.gap*(len(s.children)-1)
	if available > 0 {
		bounds.MaxWidth = available / len(s.children)
	}
	return bounds
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(s.crossAlign.Position(), views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}

	return lipgloss.JoinVertical(s.crossAlign.Position(), result...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(s.crossAlign.Position(), views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}

	return lipgloss.JoinHorizontal(s.crossAlign.Position(), result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// Position converts the alignment to a lipgloss position.
func (c CrossAxisAlignment) Position() lipgloss.Position {
	if c == CrossCenter {
		return lipgloss.Center
	}
	return lipgloss.Left
}
