// Package ui holds the interfaces shared by every rendering layer.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Static wraps a pre-rendered string.
type Static string

// View implements Renderable.
func (s Static) View() string {
	return string(s)
}
