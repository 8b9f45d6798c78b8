package splitview

// Sash is the draggable separator between view items at index i and i+1
// (spec §3, component C3). It is read-only from outside the engine;
// dragging it goes through [Engine.StartDrag]/[Engine.ChangeDrag]/
// [Engine.EndDrag].
type Sash struct {
	// State controls which directions the sash may currently be dragged.
	State SashState

	position int // prefix sum through the sash's left neighbor
}

// Position returns the sash's location on the primary axis: the prefix
// sum of sizes through its left neighbor (spec §3 invariant 5).
func (s *Sash) Position() int { return s.position }
