package splitview

// View is the contract the engine consumes for every managed pane
// (spec §4.1, §9 design note: "panes become plain descriptors passed
// across the boundary"). Bounds are read fresh by the engine on every
// operation rather than cached, so a caller may update them between
// calls (spec §3: "immutable over a view's lifetime except via explicit
// updates").
type View interface {
	// MinimumSize returns the view's current minimum size.
	MinimumSize() int
	// MaximumSize returns the view's current maximum size, or Unbounded.
	MaximumSize() int
	// Priority returns the view's absorption priority.
	Priority() Priority
	// Snap reports whether this view may be snapped to hidden.
	Snap() bool
	// PreferredSize returns the view's preferred pixel size, if any.
	PreferredSize() (size int, ok bool)
	// Layout is called by the engine to report the view's current size
	// and offset on the primary axis.
	Layout(size, offset int)
}

// sizingKind discriminates the Sizing variants of spec §4.1's AddView.
type sizingKind int

const (
	sizingExact sizingKind = iota
	sizingDistribute
	sizingSplit
	sizingInvisible
)

// Sizing selects how AddView sizes a newly inserted view. Use Exact,
// Distribute, Split, or Invisible to construct one.
type Sizing struct {
	kind     sizingKind
	value    int // exact size, or neighbor index for Split, or cached size for Invisible
}

// Exact inserts the view at precisely the given pixel size.
func Exact(size int) Sizing { return Sizing{kind: sizingExact, value: size} }

// Distribute inserts the view at its minimum size. Once the engine has
// been laid out, AddView then runs DistributeViewSizes, which gives every
// visible item the container size divided by the number of visible items
// (items that cannot change size count toward that number) before
// clamping; before the first Layout no equalizing pass runs.
func Distribute() Sizing { return Sizing{kind: sizingDistribute} }

// Split inserts the view at half the current size of the given neighbor
// index (measured before insertion).
func Split(neighbor int) Sizing { return Sizing{kind: sizingSplit, value: neighbor} }

// Invisible inserts the view hidden, with the given cached-visible size
// to be restored on the next SetViewVisible(index, true).
func Invisible(cachedVisibleSize int) Sizing {
	return Sizing{kind: sizingInvisible, value: cachedVisibleSize}
}
