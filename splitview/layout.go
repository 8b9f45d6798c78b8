package splitview

import "math"

// Layout sets the engine's target extent on the primary axis (spec
// §4.1). With no view items it only records the size and places nothing.
// If proportional layout is on and proportions have been saved by an
// earlier relayout (every mutator saves them), each item is rescaled to
// clamp(round(proportion·size), min, max) (P6, scenario 1/5 of spec §8).
// Otherwise the engine applies a single resize delta equal to
// size − max(oldSize, oldContentSize), anchored at the last index, with
// priority steering, then always concludes with distributeEmptySpace and
// layoutViews.
func (e *Engine) Layout(size int) {
	e.laidOut = true
	if len(e.items) == 0 {
		e.size = size
		return
	}
	oldSize := e.size
	oldContent := e.sumSizes()
	e.size = size

	if e.proportionalLayout && e.proportions != nil {
		for i, it := range e.items {
			target := int(math.RoundToEven(e.proportions[i] * float64(size)))
			it.size = it.clamp(target)
		}
	} else {
		anchor := len(e.items) - 1
		delta := size - maxInt(oldSize, oldContent)
		e.resizeCore(anchor, delta, -Unbounded, Unbounded, nil, nil)
	}

	e.relayoutFinish()
}

// relayoutFinish runs the tail shared by every mutator: distribute
// leftover empty space, place items and sashes, recompute sash
// enablement, save proportions, and fire OnDidChange.
func (e *Engine) relayoutFinish() {
	e.relayout(true)
}

// relayout is the shared relayout tail with the OnDidChange callback
// made optional, so a sash drag can re-place items and sashes on every
// intermediate pointer move without firing OnDidChange until EndDrag
// (spec P10: "every dragStart matched by exactly one dragEnd and
// followed by exactly one change").
func (e *Engine) relayout(emit bool) {
	e.relayoutBiased(-1, emit)
}

// relayoutBiased is relayout with control over which item (if any)
// absorbs leftover empty space last, used by ResizeView to keep an
// explicitly-sized item from being immediately overridden by the
// empty-space pass. Before the first Layout call, the container extent
// is not yet established, so mutators leave item sizes exactly as
// constructed instead of crushing them against a size of 0.
func (e *Engine) relayoutBiased(lowPriorityIndex int, emit bool) {
	if e.laidOut {
		e.distributeEmptySpace(lowPriorityIndex)
	}
	e.layoutViews()
	e.contentSize = e.sumSizes()
	e.saveProportions()
	e.updateSashStates()
	if emit {
		e.emitChange()
	}
}

// layoutViews sweeps items front-to-back assigning each a (size, offset)
// equal to the running prefix sum, and recomputes each sash's handle
// position via the same prefix sum (spec §4.3 "layout placement").
func (e *Engine) layoutViews() {
	offset := 0
	for i, it := range e.items {
		it.view.Layout(it.size, offset)
		offset += it.size
		if i < len(e.sashes) {
			e.sashes[i].position = offset
		}
	}
}

// saveProportions captures each item's fraction of content size, for use
// by the next proportional Layout call.
func (e *Engine) saveProportions() {
	n := len(e.items)
	if n == 0 {
		e.proportions = nil
		return
	}
	content := e.sumSizes()
	if content == 0 {
		return
	}
	props := make([]float64, n)
	for i, it := range e.items {
		props[i] = float64(it.size) / float64(content)
	}
	e.proportions = props
}
