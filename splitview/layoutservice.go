package splitview

import (
	"strconv"
	"strings"
)

// LayoutService resolves the percent/pixel preferred-size grammar used by
// [PaneView] against the current container extent (spec §4.5, component
// C5). It holds nothing but that one scalar, refreshed by the host on
// every container resize ahead of calling Engine.Layout.
type LayoutService struct {
	containerSize int
}

// NewLayoutService creates a LayoutService with a zero container size.
func NewLayoutService() *LayoutService {
	return &LayoutService{}
}

// SetContainerSize updates the extent percent-based preferred sizes are
// resolved against. Call before Engine.Layout on every container resize.
func (s *LayoutService) SetContainerSize(size int) {
	s.containerSize = size
}

// ContainerSize returns the extent last passed to SetContainerSize.
func (s *LayoutService) ContainerSize() int {
	return s.containerSize
}

// Resolve parses a preferred-size string of the form "NN%", "NNpx", or a
// bare integer (treated as pixels), returning the resolved pixel size and
// whether spec was well-formed. A percent is rounded to the nearest pixel
// of the last-set container size.
func (s *LayoutService) Resolve(spec string) (int, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, false
	}
	if pct, ok := strings.CutSuffix(spec, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, false
		}
		return int(f/100*float64(s.containerSize) + 0.5), true
	}
	px := strings.TrimSuffix(spec, "px")
	n, err := strconv.Atoi(px)
	if err != nil {
		return 0, false
	}
	return n, true
}
