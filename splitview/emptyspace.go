package splitview

// distributeEmptySpace redistributes size−Σsize across items in High,
// Normal, Low priority order, optionally forcing a caller-supplied index
// to absorb last regardless of its own priority (spec §4.3 "empty-space
// distribution", used by ResizeView's low-priority bias).
func (e *Engine) distributeEmptySpace(lowPriorityIndex int) {
	n := len(e.items)
	if n == 0 {
		return
	}
	emptyDelta := e.size - e.sumSizes()
	if emptyDelta == 0 {
		return
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	ordered := reorderByPriority(all, e.items)
	if lowPriorityIndex >= 0 && lowPriorityIndex < n {
		filtered := make([]int, 0, n)
		for _, k := range ordered {
			if k != lowPriorityIndex {
				filtered = append(filtered, k)
			}
		}
		ordered = append(filtered, lowPriorityIndex)
	}

	remain := emptyDelta
	for _, k := range ordered {
		if remain == 0 {
			break
		}
		it := e.items[k]
		old := it.size
		it.size = it.clamp(old + remain)
		remain -= it.size - old
	}
}

func (e *Engine) sumSizes() int {
	total := 0
	for _, it := range e.items {
		total += it.size
	}
	return total
}
