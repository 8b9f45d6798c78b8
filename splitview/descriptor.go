package splitview

import "fmt"

// Unbounded stands in for "+∞" as a view's maximum size. It is large
// enough that it is never reached in practice but small enough that sums
// of several unbounded bounds do not overflow int arithmetic.
const Unbounded = 1 << 30

// Descriptor is the passive, immutable-by-convention record of a view's
// size bounds, priority, and snap flag (spec §3, component C1). It also
// satisfies [View] directly, which makes it usable on its own for simple
// views that need no preferred-size resolution; [PaneView] builds on it
// for the percent/pixel grammar of §4.5.
type Descriptor struct {
	// Min is the view's minimum size. Zero means no minimum.
	Min int
	// Max is the view's maximum size, or Unbounded for "no maximum".
	Max int
	// Prio steers absorption order when proportional layout is off.
	Prio Priority
	// CanSnap enables the snap-to-hidden behavior on this view's nearest
	// sash during a drag.
	CanSnap bool
	// Preferred, when non-nil, is the pixel size returned by
	// PreferredSize, which a binding can resize the view to on a sash
	// reset.
	Preferred *int
	// OnLayout is called with the view's current (size, offset) on the
	// primary axis every time the engine repositions it. A nil OnLayout
	// is a valid no-op view, useful in tests.
	OnLayout func(size, offset int)
}

// NewDescriptor builds a Descriptor and validates it, returning
// ErrInvalidDescriptor if min > max.
func NewDescriptor(min, max int, prio Priority, snap bool) (*Descriptor, error) {
	d := &Descriptor{Min: min, Max: max, Prio: prio, CanSnap: snap}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the min ≤ max invariant (spec §3).
func (d *Descriptor) Validate() error {
	max := d.Max
	if max <= 0 {
		max = Unbounded
	}
	if d.Min < 0 {
		return fmt.Errorf("splitview: %w: minimum size %d is negative", ErrInvalidDescriptor, d.Min)
	}
	if d.Min > max {
		return fmt.Errorf("splitview: %w: min=%d max=%d", ErrInvalidDescriptor, d.Min, d.Max)
	}
	return nil
}

// MinimumSize implements View.
func (d *Descriptor) MinimumSize() int { return d.Min }

// MaximumSize implements View. A Max of zero or less is treated as
// Unbounded, so a zero-value Descriptor is usable without ceremony.
func (d *Descriptor) MaximumSize() int {
	if d.Max <= 0 {
		return Unbounded
	}
	return d.Max
}

// Priority implements View.
func (d *Descriptor) Priority() Priority { return d.Prio }

// Snap implements View.
func (d *Descriptor) Snap() bool { return d.CanSnap }

// PreferredSize implements View.
func (d *Descriptor) PreferredSize() (int, bool) {
	if d.Preferred == nil {
		return 0, false
	}
	return *d.Preferred, true
}

// Layout implements View.
func (d *Descriptor) Layout(size, offset int) {
	if d.OnLayout != nil {
		d.OnLayout(size, offset)
	}
}
