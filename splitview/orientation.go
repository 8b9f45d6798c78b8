package splitview

// Orientation selects the primary axis along which views are stacked.
type Orientation int

const (
	// Vertical stacks views top to bottom; it is the default.
	Vertical Orientation = iota
	// Horizontal stacks views left to right.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}
