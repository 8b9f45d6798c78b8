package splitview

import "github.com/google/uuid"

// PaneView is a [Descriptor] identified by a stable ID and given a
// human-authored preferred-size spec — "30%", "200px", or a bare
// pixel count — resolved against a [LayoutService] (spec §4.5,
// component C6). It is the view type a host binding typically hands
// to AddView; plain [Descriptor] remains available for callers that
// only need pixel bounds.
type PaneView struct {
	*Descriptor

	// ID is a stable identifier for the pane, generated once at
	// construction, useful for host-side bookkeeping (e.g. matching a
	// pane back to the widget tree after a reorder).
	ID uuid.UUID

	// PreferredSpec is the preferred-size grammar string. Empty means
	// "no preference", falling back to Descriptor.Preferred.
	PreferredSpec string

	layout *LayoutService
}

// NewPaneView builds a PaneView over the given descriptor, resolving
// PreferredSpec against layout (which may be nil if spec is never set).
func NewPaneView(d *Descriptor, layout *LayoutService, preferredSpec string) *PaneView {
	return &PaneView{
		Descriptor:    d,
		ID:            uuid.New(),
		PreferredSpec: preferredSpec,
		layout:        layout,
	}
}

// PreferredSize implements View, preferring PreferredSpec resolved
// through the LayoutService over the embedded Descriptor's pixel value.
func (p *PaneView) PreferredSize() (int, bool) {
	if p.PreferredSpec != "" && p.layout != nil {
		if px, ok := p.layout.Resolve(p.PreferredSpec); ok {
			return px, true
		}
	}
	return p.Descriptor.PreferredSize()
}
