package splitview

// snapTarget captures, at drag start, the view item immediately on one
// side of a sash, when that item is snap-enabled (items further from the
// sash are never snap targets), and the delta threshold at which it flips
// visibility (spec §4.2). limitDelta is fixed for the whole drag; the
// item's own current visible()/cachedSize() decide which way it toggles,
// so dragging back past the same threshold later in the same gesture
// toggles it on again (spec §4.2, P9).
type snapTarget struct {
	index      int
	limitDelta int
}

// reorderByPriority stable-partitions idx into High, then Normal, then
// Low priority groups, preserving relative order within each group
// (spec §4.3 step 1).
func reorderByPriority(idx []int, items []*item) []int {
	var high, normal, low []int
	for _, k := range idx {
		switch items[k].priority() {
		case PriorityHigh:
			high = append(high, k)
		case PriorityLow:
			low = append(low, k)
		default:
			normal = append(normal, k)
		}
	}
	out := make([]int, 0, len(idx))
	out = append(out, high...)
	out = append(out, normal...)
	out = append(out, low...)
	return out
}

func upDownIndexes(anchor, n int) (up, down []int) {
	for k := anchor; k >= 0; k-- {
		up = append(up, k)
	}
	for k := anchor + 1; k < n; k++ {
		down = append(down, k)
	}
	return up, down
}

// dragBounds computes the tightest feasible delta range for the given
// up/down index sets from their CURRENT sizes (spec §4.3 step 2).
// upExclude/downExclude (or -1 for none) name an armed snap target whose
// own floor is left out of the sum: its constraint is enforced by the
// snap hide/show toggle in resizeCore, not by clamping the delta early,
// or the toggle could never be reached (spec §4.2).
func dragBounds(items []*item, up, down []int, upExclude, downExclude int) (minDeltaUp, maxDeltaUp, minDeltaDown, maxDeltaDown int) {
	for _, k := range up {
		if k == upExclude {
			minDeltaUp += -Unbounded
			maxDeltaUp += Unbounded
			continue
		}
		it := items[k]
		minDeltaUp += it.minimum() - it.size
		maxDeltaUp += it.maximum() - it.size
	}
	if len(down) == 0 {
		minDeltaDown = -Unbounded
		maxDeltaDown = Unbounded
		return
	}
	for _, k := range down {
		if k == downExclude {
			minDeltaDown += -Unbounded
			maxDeltaDown += Unbounded
			continue
		}
		it := items[k]
		maxDeltaDown += it.size - it.minimum()
		minDeltaDown += it.size - it.maximum()
	}
	return
}

// resizeCore is the resize algorithm of spec §4.3. anchor is an item
// index: up = [anchor, anchor-1, ..., 0], down = [anchor+1, ..., N-1].
// overloadMin/overloadMax are intersected with the live bounds, so they
// can only narrow the feasible range: the drag-start bounds during a
// drag, ±Unbounded when called outside a drag. snapUp/snapDown are nil outside a drag, or once a snap toggle
// has already been applied this call chain (step 3's recursive
// re-invocation passes nil to avoid infinite toggling).
func (e *Engine) resizeCore(anchor, delta, overloadMin, overloadMax int, snapUp, snapDown *snapTarget) {
	n := len(e.items)
	if n == 0 {
		return
	}
	up, down := upDownIndexes(anchor, n)

	upExclude, downExclude := -1, -1
	if snapUp != nil {
		upExclude = snapUp.index
	}
	if snapDown != nil {
		downExclude = snapDown.index
	}
	minDeltaUp, maxDeltaUp, minDeltaDown, maxDeltaDown := dragBounds(e.items, up, down, upExclude, downExclude)
	lo := maxInt(maxInt(minDeltaUp, minDeltaDown), overloadMin)
	hi := minInt(minInt(maxDeltaUp, maxDeltaDown), overloadMax)
	if hi < lo {
		hi = lo
	}
	clamped := clampInt(delta, lo, hi)

	if snapUp != nil || snapDown != nil {
		changed := false
		if snapUp != nil {
			it := e.items[snapUp.index]
			if it.visible() && clamped < snapUp.limitDelta {
				it.hide()
				changed = true
			} else if !it.visible() && clamped >= snapUp.limitDelta {
				it.show(it.cachedSize())
				changed = true
			}
		}
		if snapDown != nil {
			it := e.items[snapDown.index]
			if it.visible() && clamped > snapDown.limitDelta {
				it.hide()
				changed = true
			} else if !it.visible() && clamped <= snapDown.limitDelta {
				it.show(it.cachedSize())
				changed = true
			}
		}
		if changed {
			e.resizeCore(anchor, delta, overloadMin, overloadMax, nil, nil)
			return
		}
	}

	upOrdered := reorderByPriority(up, e.items)
	remain := clamped
	for _, k := range upOrdered {
		if remain == 0 {
			break
		}
		it := e.items[k]
		old := it.size
		it.size = it.clamp(old + remain)
		remain -= it.size - old
	}

	downOrdered := reorderByPriority(down, e.items)
	remainDown := clamped
	for _, k := range downOrdered {
		if remainDown == 0 {
			break
		}
		it := e.items[k]
		old := it.size
		it.size = it.clamp(old - remainDown)
		remainDown -= old - it.size
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
