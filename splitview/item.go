package splitview

// item is the engine's owned wrapper around a [View] (spec §3, component
// C2). It is never shared outside the engine that created it.
type item struct {
	view View

	// size is the current pixel extent. It is always 0 while hidden.
	size int

	// cachedVisibleSize is defined iff the item is hidden; it carries the
	// size the item had when last visible (spec §3 invariant 2).
	cachedVisibleSize *int
}

func newItem(v View, size int) *item {
	return &item{view: v, size: size}
}

// visible reports whether the item is currently shown (spec §3:
// "derived — true iff cachedVisibleSize is undefined").
func (it *item) visible() bool { return it.cachedVisibleSize == nil }

// minimum returns the item's effective minimum: the view's own minimum
// while visible, or 0 while hidden (spec §3).
func (it *item) minimum() int {
	if !it.visible() {
		return 0
	}
	return it.view.MinimumSize()
}

// maximum returns the item's effective maximum: the view's own maximum
// while visible, or 0 while hidden.
func (it *item) maximum() int {
	if !it.visible() {
		return 0
	}
	return it.view.MaximumSize()
}

func (it *item) priority() Priority { return it.view.Priority() }
func (it *item) snap() bool         { return it.view.Snap() }

// clamp bounds a candidate size to [minimum, maximum].
func (it *item) clamp(size int) int {
	if size < it.minimum() {
		return it.minimum()
	}
	if size > it.maximum() {
		return it.maximum()
	}
	return size
}

// hide caches the current size and collapses the item to 0.
func (it *item) hide() {
	if !it.visible() {
		return
	}
	sz := it.size
	it.cachedVisibleSize = &sz
	it.size = 0
}

// cachedSize returns the size an item had when last visible, or 0 if the
// item is not currently hidden.
func (it *item) cachedSize() int {
	if it.cachedVisibleSize == nil {
		return 0
	}
	return *it.cachedVisibleSize
}

// show restores the given size (typically the item's own cachedSize()),
// clamped to the view's now-visible bounds.
func (it *item) show(restoreTo int) {
	if it.visible() {
		return
	}
	it.cachedVisibleSize = nil
	it.size = it.clamp(restoreTo)
}
