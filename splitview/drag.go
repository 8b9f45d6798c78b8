package splitview

// dragState holds the values frozen at StartDrag for the duration of a
// single sash drag gesture (spec §4.2). anchor is the sash's left item
// index; minDelta/maxDelta are the "overload" bounds computed once up
// front, which stay wider than the live per-call bounds once a neighbor
// has snapped hidden mid-drag.
type dragState struct {
	anchor        int
	startPosition int

	minDelta int
	maxDelta int

	snapUp   *snapTarget
	snapDown *snapTarget

	// startSizes/startHidden/startCached snapshot every item's state at
	// StartDrag. ChangeDrag restores this snapshot before each
	// recompute, since currentPosition is always measured from
	// startPosition, not from the previous ChangeDrag call.
	startSizes  []int
	startHidden []bool
	startCached []int
}

// StartDrag begins an interactive drag of the sash at the given index,
// anchored at the pointer's starting position on the primary axis (spec
// §4.2). It freezes the drag-session bounds and snap targets, then fires
// OnDidDragStart.
func (e *Engine) StartDrag(index, startPosition int) error {
	if index < 0 || index >= len(e.sashes) {
		return ErrIndexOutOfBounds
	}
	n := len(e.items)
	up, down := upDownIndexes(index, n)
	snapUp := e.snapTargetFor(index, -1)
	snapDown := e.snapTargetFor(index, 1)

	upExclude, downExclude := -1, -1
	if snapUp != nil {
		upExclude = snapUp.index
	}
	if snapDown != nil {
		downExclude = snapDown.index
	}
	minUp, maxUp, minDown, maxDown := dragBounds(e.items, up, down, upExclude, downExclude)

	startSizes := make([]int, n)
	startHidden := make([]bool, n)
	startCached := make([]int, n)
	for i, it := range e.items {
		startSizes[i] = it.size
		startHidden[i] = !it.visible()
		startCached[i] = it.cachedSize()
	}

	d := &dragState{
		anchor:        index,
		startPosition: startPosition,
		minDelta:      maxInt(minUp, minDown),
		maxDelta:      minInt(maxUp, maxDown),
		snapUp:        snapUp,
		snapDown:      snapDown,
		startSizes:    startSizes,
		startHidden:   startHidden,
		startCached:   startCached,
	}
	if d.maxDelta < d.minDelta {
		d.maxDelta = d.minDelta
	}
	e.drag = d

	if e.OnDidDragStart != nil {
		e.OnDidDragStart(e.sizes())
	}
	return nil
}

// ChangeDrag reports the pointer's current position during an active
// drag. Since currentPosition is always measured against the drag's
// startPosition, it first restores every item to its drag-start
// snapshot, then reapplies the resize algorithm for the full delta from
// scratch — repeated ChangeDrag calls are idempotent for the same
// position, not cumulative. Re-places items and sashes but defers
// OnDidChange until EndDrag (spec P10).
func (e *Engine) ChangeDrag(currentPosition int) error {
	if e.drag == nil {
		return ErrNoActiveDrag
	}
	e.restoreDragSnapshot()
	delta := currentPosition - e.drag.startPosition
	e.resizeCore(e.drag.anchor, delta, e.drag.minDelta, e.drag.maxDelta, e.drag.snapUp, e.drag.snapDown)
	e.relayout(false)
	return nil
}

// restoreDragSnapshot resets every item to its size and visibility as of
// StartDrag.
func (e *Engine) restoreDragSnapshot() {
	d := e.drag
	for i, it := range e.items {
		if d.startHidden[i] {
			cached := d.startCached[i]
			it.cachedVisibleSize = &cached
			it.size = 0
		} else {
			it.cachedVisibleSize = nil
			it.size = d.startSizes[i]
		}
	}
}

// EndDrag concludes the active drag, firing OnDidDragEnd followed by
// exactly one OnDidChange (spec P10).
func (e *Engine) EndDrag() error {
	if e.drag == nil {
		return ErrNoActiveDrag
	}
	e.drag = nil
	if e.OnDidDragEnd != nil {
		e.OnDidDragEnd(e.sizes())
	}
	e.emitChange()
	return nil
}

// ResetSash reports that the sash at the given index was activated for
// reset (e.g. double-clicked). It does not decide the reset policy or
// mutate any item size itself; it only fires OnSashReset, leaving the
// binding to apply its own policy (typically resizing both neighbors
// toward their preferred size, spec §6). A reset that lands on a sash
// bordering a currently hidden (snapped) neighbor is suppressed, since
// there is no meaningful size to reset toward on that side.
func (e *Engine) ResetSash(index int) error {
	if index < 0 || index >= len(e.sashes) {
		return ErrIndexOutOfBounds
	}
	left, right := e.items[index], e.items[index+1]
	if !left.visible() || !right.visible() {
		return nil
	}

	if e.OnSashReset != nil {
		e.OnSashReset(index)
	}
	return nil
}

// snapTargetFor returns the snap target for the immediate neighbor on
// the given side of the sash anchored at the up-item index anchor
// (dir -1 = the up/left neighbor, items[anchor]; dir +1 = the down/right
// neighbor, items[anchor+1]), or nil if that neighbor does not exist or
// is not snap-enabled. limitDelta is the delta at which the neighbor's
// would-be size crosses half its own minimum (spec §4.2).
func (e *Engine) snapTargetFor(anchor, dir int) *snapTarget {
	n := len(e.items)
	idx := anchor
	if dir > 0 {
		idx = anchor + 1
	}
	if idx < 0 || idx >= n {
		return nil
	}
	it := e.items[idx]
	if !it.snap() {
		return nil
	}
	half := it.view.MinimumSize() / 2
	if dir < 0 {
		return &snapTarget{index: idx, limitDelta: half - it.size}
	}
	return &snapTarget{index: idx, limitDelta: it.size - half}
}
