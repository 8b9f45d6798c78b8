package splitview

// updateSashStates recomputes every sash's state from the current item
// sizes (spec §4.4). Run after every resize/layout pass.
func (e *Engine) updateSashStates() {
	n := len(e.items)
	if n == 0 {
		return
	}

	downCollapse := make([]bool, n)
	downExpand := make([]bool, n)
	upCollapse := make([]bool, n)
	upExpand := make([]bool, n)

	collapse, expand := false, false
	for k := 0; k < n; k++ {
		it := e.items[k]
		if it.visible() && it.size > it.minimum() {
			collapse = true
		}
		if it.visible() && it.size < it.maximum() {
			expand = true
		}
		downCollapse[k] = collapse
		downExpand[k] = expand
	}

	collapse, expand = false, false
	for k := n - 1; k >= 0; k-- {
		it := e.items[k]
		if it.visible() && it.size > it.minimum() {
			collapse = true
		}
		if it.visible() && it.size < it.maximum() {
			expand = true
		}
		upCollapse[k] = collapse
		upExpand[k] = expand
	}

	for i, s := range e.sashes {
		canMoveLeft := !(downCollapse[i] && upExpand[i+1])
		canMoveRight := !(downExpand[i] && upCollapse[i+1])

		var state SashState
		switch {
		case canMoveLeft && canMoveRight:
			state = SashDisabled
		case canMoveLeft && !canMoveRight:
			state = SashMinimum
		case !canMoveLeft && canMoveRight:
			state = SashMaximum
		default:
			state = SashEnabled
		}

		if state == SashDisabled {
			if idx, ok := e.firstSnapEnabledHidden(i, -1); ok && e.snapGateOK(idx) {
				state = SashMinimum
			} else if idx, ok := e.firstSnapEnabledHidden(i, 1); ok && e.snapGateOK(idx) {
				state = SashMaximum
			}
		}
		s.State = state
	}
}

// firstSnapEnabledHidden scans from sash index i outward (dir -1 = up
// toward index 0, dir +1 = down toward the last index) for the first
// hidden, snap-enabled view item.
func (e *Engine) firstSnapEnabledHidden(i, dir int) (int, bool) {
	n := len(e.items)
	start := i
	if dir > 0 {
		start = i + 1
	}
	for k := start; k >= 0 && k < n; k += dir {
		it := e.items[k]
		if !it.visible() && it.snap() {
			return k, true
		}
	}
	return 0, false
}

// snapGateOK reports whether a snap toggle targeting item idx is allowed
// given StartSnappingEnabled/EndSnappingEnabled; only the first and last
// view items are gated.
func (e *Engine) snapGateOK(idx int) bool {
	n := len(e.items)
	if idx == 0 {
		return e.startSnappingEnabled
	}
	if idx == n-1 {
		return e.endSnappingEnabled
	}
	return true
}
