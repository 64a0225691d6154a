package stepper

import (
	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
)

// ViewportFunc reports whether the viewport is narrow. It is called on
// every render and every interaction, never cached.
type ViewportFunc func() bool

// NarrowBelow returns a ViewportFunc that is narrow while width() is
// known and below columns.
func NarrowBelow(columns int, width func() int) ViewportFunc {
	return func() bool {
		w := width()
		return w > 0 && w < columns
	}
}

// ResponsiveStepper switches between Stepper and MobileStepper. It keeps
// no state of its own; the delegate is rebuilt from the current props
// whenever it is needed.
type ResponsiveStepper struct {
	seq           *model.Sequence
	active        int
	orientation   Orientation
	alignment     Alignment
	showOptional  bool
	onSelect      func(index int)
	mobileVariant Variant
	onNext        func()
	onBack        func()
	nextText      string
	backText      string
	narrow        ViewportFunc
}

// NewResponsiveStepper creates a responsive stepper. A nil viewport
// function is always wide.
func NewResponsiveStepper(seq *model.Sequence, narrow ViewportFunc) *ResponsiveStepper {
	return &ResponsiveStepper{seq: seq, narrow: narrow}
}

// WithActive sets the active index.
func (r *ResponsiveStepper) WithActive(index int) *ResponsiveStepper {
	r.active = index
	return r
}

// WithOrientation sets the wide layout direction.
func (r *ResponsiveStepper) WithOrientation(o Orientation) *ResponsiveStepper {
	r.orientation = o
	return r
}

// WithAlignment sets the wide label alignment.
func (r *ResponsiveStepper) WithAlignment(a Alignment) *ResponsiveStepper {
	r.alignment = a
	return r
}

// WithShowOptional shows optional captions in the wide layout.
func (r *ResponsiveStepper) WithShowOptional(show bool) *ResponsiveStepper {
	r.showOptional = show
	return r
}

// OnStepSelected registers the wide layout's selection callback.
func (r *ResponsiveStepper) OnStepSelected(fn func(index int)) *ResponsiveStepper {
	r.onSelect = fn
	return r
}

// WithMobileVariant sets the narrow indicator style.
func (r *ResponsiveStepper) WithMobileVariant(v Variant) *ResponsiveStepper {
	r.mobileVariant = v
	return r
}

// OnNext registers the next callback.
func (r *ResponsiveStepper) OnNext(fn func()) *ResponsiveStepper {
	r.onNext = fn
	return r
}

// OnBack registers the back callback.
func (r *ResponsiveStepper) OnBack(fn func()) *ResponsiveStepper {
	r.onBack = fn
	return r
}

// WithNextText sets the narrow next caption.
func (r *ResponsiveStepper) WithNextText(text string) *ResponsiveStepper {
	r.nextText = text
	return r
}

// WithBackText sets the narrow back caption.
func (r *ResponsiveStepper) WithBackText(text string) *ResponsiveStepper {
	r.backText = text
	return r
}

// WithViewport replaces the viewport classification.
func (r *ResponsiveStepper) WithViewport(narrow ViewportFunc) *ResponsiveStepper {
	r.narrow = narrow
	return r
}

// IsNarrow asks the viewport function.
func (r *ResponsiveStepper) IsNarrow() bool {
	return r.narrow != nil && r.narrow()
}

func (r *ResponsiveStepper) total() int {
	if r.seq == nil {
		return 1
	}
	return r.seq.Len()
}

// Mobile builds the narrow delegate from the current props.
func (r *ResponsiveStepper) Mobile() *MobileStepper {
	total := r.total()
	active := model.ClampIndex(r.active, total)
	return NewMobileStepper(total).
		WithActive(active).
		WithVariant(r.mobileVariant).
		WithBackDisabled(active == 0).
		WithNextDisabled(active == total-1).
		WithBackText(r.backText).
		WithNextText(r.nextText).
		OnBack(r.onBack).
		OnNext(r.onNext)
}

// Desktop builds the wide delegate from the current props.
func (r *ResponsiveStepper) Desktop() *Stepper {
	return NewStepper(r.seq).
		WithActive(r.active).
		WithOrientation(r.orientation).
		WithAlignment(r.alignment).
		WithShowOptional(r.showOptional).
		OnStepSelected(r.onSelect)
}

// Presenter returns the delegate for the current viewport.
func (r *ResponsiveStepper) Presenter() components.ContextualRenderable {
	if r.IsNarrow() {
		return r.Mobile()
	}
	return r.Desktop()
}

// Next forwards to the mobile delegate when narrow. When wide it fires the
// callback under the same boundary rule.
func (r *ResponsiveStepper) Next() bool {
	if r.IsNarrow() {
		return r.Mobile().Next()
	}
	if _, atEnd := model.Boundaries(r.active, r.total()); atEnd {
		return false
	}
	if r.onNext != nil {
		r.onNext()
	}
	return true
}

// Back mirrors Next.
func (r *ResponsiveStepper) Back() bool {
	if r.IsNarrow() {
		return r.Mobile().Back()
	}
	if atStart, _ := model.Boundaries(r.active, r.total()); atStart {
		return false
	}
	if r.onBack != nil {
		r.onBack()
	}
	return true
}

// Select forwards to the wide delegate. The narrow view has no step
// targets, so it ignores selection.
func (r *ResponsiveStepper) Select(index int) bool {
	if r.IsNarrow() {
		return false
	}
	return r.Desktop().Select(index)
}

// View renders the current delegate with the default theme.
func (r *ResponsiveStepper) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the current delegate.
func (r *ResponsiveStepper) ViewWithContext(ctx components.RenderContext) string {
	return r.Presenter().ViewWithContext(ctx)
}
