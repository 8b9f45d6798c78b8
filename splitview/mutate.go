package splitview

import (
	"slices"

	"github.com/resonantlabs/splitview/base/slicesx"
)

// AddView inserts view at the given item index (0..ViewCount) with the
// initial size chosen by sizing, adds the matching sash, and relayouts
// (spec §4.1, component C4's AddView operation).
func (e *Engine) AddView(view View, sizing Sizing, index int) error {
	if index < 0 || index > len(e.items) {
		return ErrIndexOutOfBounds
	}

	var it *item
	switch sizing.kind {
	case sizingExact:
		it = newItem(view, sizing.value)

	case sizingSplit:
		if sizing.value < 0 || sizing.value >= len(e.items) {
			return ErrIndexOutOfBounds
		}
		it = newItem(view, e.items[sizing.value].size/2)

	case sizingInvisible:
		it = newItem(view, 0)
		cached := sizing.value
		it.cachedVisibleSize = &cached

	default: // sizingDistribute
		it = newItem(view, view.MinimumSize())
	}

	e.items = slices.Insert(e.items, index, it)
	e.addSashAt(index)

	if sizing.kind == sizingDistribute && e.laidOut {
		e.DistributeViewSizes()
		return nil
	}
	e.relayoutFinish()
	return nil
}

// RemoveView removes and returns the view at the given item index, along
// with its matching sash, then relayouts. An optional sizing argument of
// Distribute() re-equalises the remaining items' sizes instead of the
// plain relayout (spec §4.1: "removeView(index, sizing?) ... if sizing is
// Distribute, re-equalises"). Any extra argument beyond the first is
// ignored.
func (e *Engine) RemoveView(index int, sizing ...Sizing) (View, error) {
	if index < 0 || index >= len(e.items) {
		return nil, ErrIndexOutOfBounds
	}
	view := e.items[index].view
	e.removeSashAt(index)
	e.items = slices.Delete(e.items, index, index+1)

	if len(sizing) > 0 && sizing[0].kind == sizingDistribute && e.laidOut {
		e.DistributeViewSizes()
		return view, nil
	}
	e.relayoutFinish()
	return view, nil
}

// MoveView relocates the item at index from to index to, preserving its
// size and visibility (spec §4.1: "cached-hidden state carries across a
// move").
func (e *Engine) MoveView(from, to int) error {
	n := len(e.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfBounds
	}
	e.items = slicesx.Move(e.items, from, to)
	e.relayoutFinish()
	return nil
}

// IsViewVisible reports whether the item at the given index is currently
// shown.
func (e *Engine) IsViewVisible(index int) (bool, error) {
	if index < 0 || index >= len(e.items) {
		return false, ErrIndexOutOfBounds
	}
	return e.items[index].visible(), nil
}

// SetViewVisible shows or hides the item at the given index. Showing
// restores the item's cached pre-hide size, clamped to its current
// bounds; hiding caches the current size for the next show. The toggled
// item absorbs leftover empty space last, so the other items make room.
func (e *Engine) SetViewVisible(index int, visible bool) error {
	if index < 0 || index >= len(e.items) {
		return ErrIndexOutOfBounds
	}
	it := e.items[index]
	if visible {
		it.show(it.cachedSize())
	} else {
		it.hide()
	}
	e.relayoutBiased(index, true)
	return nil
}

// GetViewSize returns the current pixel size of the item at the given
// index, or -1 if index is out of range.
func (e *Engine) GetViewSize(index int) int {
	if index < 0 || index >= len(e.items) {
		return -1
	}
	return e.items[index].size
}

// ResizeView sets the item at the given index to the given size, clamped
// to its bounds, pulling the difference from the other items in priority
// order. The resized item itself is biased to absorb any still-leftover
// space last, so it does not get silently overridden by the empty-space
// pass (spec §4.3, ResizeView's low-priority bias). Out-of-range indexes
// are a no-op.
func (e *Engine) ResizeView(index, size int) {
	if index < 0 || index >= len(e.items) {
		return
	}
	it := e.items[index]
	it.size = it.clamp(size)
	e.relayoutBiased(index, true)
}

// ResizeViews sets every item's size at once, each clamped to its own
// bounds, then relayouts. The given slice must have one entry per item.
func (e *Engine) ResizeViews(sizes []int) error {
	if len(sizes) != len(e.items) {
		return ErrIndexOutOfBounds
	}
	for i, it := range e.items {
		it.size = it.clamp(sizes[i])
	}
	e.relayoutFinish()
	return nil
}

// DistributeViewSizes splits the container size evenly across the
// currently visible items, each clamped to its own bounds, then
// relayouts to absorb whatever the clamping left over.
func (e *Engine) DistributeViewSizes() {
	n := len(e.items)
	if n == 0 {
		return
	}
	visible := 0
	for _, it := range e.items {
		if it.visible() {
			visible++
		}
	}
	if visible > 0 {
		share := e.size / visible
		for _, it := range e.items {
			if it.visible() {
				it.size = it.clamp(share)
			}
		}
	}
	e.relayoutFinish()
}

// addSashAt inserts the sash matching a just-inserted item at itemIndex
// (spec §3 invariant 4: SashCount == max(0, ViewCount-1)).
func (e *Engine) addSashAt(itemIndex int) {
	if len(e.items) < 2 {
		return
	}
	sashIdx := itemIndex - 1
	if sashIdx < 0 {
		sashIdx = 0
	}
	e.sashes = slices.Insert(e.sashes, sashIdx, &Sash{})
}

// removeSashAt removes the sash matching the item about to be removed at
// itemIndex. Call before deleting the item from e.items.
func (e *Engine) removeSashAt(itemIndex int) {
	if len(e.sashes) == 0 {
		return
	}
	sashIdx := itemIndex - 1
	if sashIdx < 0 {
		sashIdx = 0
	}
	if sashIdx >= len(e.sashes) {
		sashIdx = len(e.sashes) - 1
	}
	e.sashes = slices.Delete(e.sashes, sashIdx, sashIdx+1)
}
