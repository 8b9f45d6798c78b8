package splitview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonantlabs/splitview/splitview"
)

func TestSashEnabledWhenBothNeighborsFlexible(t *testing.T) {
	a := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	b := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	e := newEngineWithSizes(t, []int{200, 200}, []*splitview.Descriptor{a, b})
	e.Layout(400)

	assert.Equal(t, splitview.SashEnabled, e.Sash(0).State)
}

func TestSashDisabledWhenBothNeighborsPinned(t *testing.T) {
	a := desc(t, 200, 200, splitview.PriorityNormal, false)
	b := desc(t, 200, 200, splitview.PriorityNormal, false)
	e := newEngineWithSizes(t, []int{200, 200}, []*splitview.Descriptor{a, b})
	e.Layout(400)

	assert.Equal(t, splitview.SashDisabled, e.Sash(0).State)
}

func TestSashMinimumWhenLeftAtFloorRightFlexible(t *testing.T) {
	// Left neighbor is exactly at its minimum and cannot shrink further
	// to its own left (no item before it), but the sash can still grow
	// the left side since the right neighbor can give back room.
	a := desc(t, 100, splitview.Unbounded, splitview.PriorityNormal, false)
	b := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	e := newEngineWithSizes(t, []int{100, 300}, []*splitview.Descriptor{a, b})
	e.Layout(400)

	state := e.Sash(0).State
	assert.Equal(t, splitview.SashMinimum, state)
}

func TestSashSnapOverrideWhenHiddenNeighborCanReappear(t *testing.T) {
	a := desc(t, 200, 200, splitview.PriorityNormal, false) // pinned
	b := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, true)
	c := desc(t, 200, 200, splitview.PriorityNormal, false) // pinned

	e := newEngineWithSizes(t, []int{200, 200, 200}, []*splitview.Descriptor{a, b, c})
	e.Layout(600)

	require.NoError(t, e.SetViewVisible(1, false))

	state := e.Sash(0).State
	assert.NotEqual(t, splitview.SashDisabled, state)
}
