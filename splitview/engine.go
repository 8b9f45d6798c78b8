package splitview

// Options configures a new [Engine] (spec §6, engine constructor input).
type Options struct {
	// Orientation is the primary axis; default Vertical.
	Orientation Orientation
	// ProportionalLayout, when true, makes Layout rescale each item by
	// its last-saved fraction of content size instead of applying a
	// single priority-steered resize delta.
	ProportionalLayout bool
	// GetSashOrthogonalSize optionally returns the orthogonal extent of a
	// sash. New stores it, but the engine never calls it and a Sash
	// carries no orthogonal extent.
	GetSashOrthogonalSize func() int
	// StartSnappingEnabled and EndSnappingEnabled gate whether a snap may
	// trigger at the respective ends of the view sequence. Both default
	// to true.
	StartSnappingEnabled *bool
	EndSnappingEnabled    *bool
}

// Engine owns the ordered view items and sashes of a single split
// container (spec §4.1, component C4) and implements the resize
// algorithm, drag pipeline, and relayout policy. An Engine is not safe
// for concurrent use: spec §5 assumes a single thread of control, and
// every public method mutates state in place and fires callbacks
// synchronously before returning.
type Engine struct {
	orientation        Orientation
	proportionalLayout bool
	getSashOrthoSize   func() int

	startSnappingEnabled bool
	endSnappingEnabled   bool

	items  []*item
	sashes []*Sash

	size        int
	contentSize int
	laidOut     bool      // true once Layout has been called at least once
	proportions []float64 // saved after every relayout with non-zero content; nil until then

	drag *dragState

	// OnDidChange fires at the end of every sash drag and on
	// programmatic resizes that affect sizes.
	OnDidChange func(sizes []int)
	// OnDidDragStart and OnDidDragEnd bracket an interactive drag.
	OnDidDragStart func(sizes []int)
	OnDidDragEnd   func(sizes []int)
	// OnSashReset fires when a sash is activated for reset (e.g.
	// double-clicked); the engine does not decide the reset policy
	// itself, see ResetSash.
	OnSashReset func(index int)
}

// New creates an Engine with the given options. A zero-value Options is
// a vertical, non-proportional engine with snapping enabled at both ends.
func New(opts Options) *Engine {
	e := &Engine{
		orientation:        opts.Orientation,
		proportionalLayout: opts.ProportionalLayout,
		getSashOrthoSize:   opts.GetSashOrthogonalSize,

		startSnappingEnabled: true,
		endSnappingEnabled:   true,
	}
	if opts.StartSnappingEnabled != nil {
		e.startSnappingEnabled = *opts.StartSnappingEnabled
	}
	if opts.EndSnappingEnabled != nil {
		e.endSnappingEnabled = *opts.EndSnappingEnabled
	}
	return e
}

// Orientation returns the engine's primary axis.
func (e *Engine) Orientation() Orientation { return e.orientation }

// Size returns the container extent on the primary axis, as last set by
// Layout.
func (e *Engine) Size() int { return e.size }

// ContentSize returns the sum of current view item sizes.
func (e *Engine) ContentSize() int { return e.contentSize }

// ViewCount returns the number of managed view items.
func (e *Engine) ViewCount() int { return len(e.items) }

// SashCount returns max(0, ViewCount-1) (spec §3 invariant 4, P4).
func (e *Engine) SashCount() int { return len(e.sashes) }

// Sash returns the sash at the given index, or nil if out of range.
func (e *Engine) Sash(index int) *Sash {
	if index < 0 || index >= len(e.sashes) {
		return nil
	}
	return e.sashes[index]
}

// Dispose releases the engine's sashes. It does not touch the views
// themselves, which the caller owns.
func (e *Engine) Dispose() {
	e.drag = nil
	e.items = nil
	e.sashes = nil
	e.proportions = nil
}

func (e *Engine) emitChange() {
	if e.OnDidChange != nil {
		e.OnDidChange(e.sizes())
	}
}

func (e *Engine) sizes() []int {
	out := make([]int, len(e.items))
	for i, it := range e.items {
		out[i] = it.size
	}
	return out
}
