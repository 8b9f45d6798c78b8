package splitview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonantlabs/splitview/splitview"
)

// P8: with proportional layout off, growing the container feeds a
// high-priority item before normal, which is fed before low, up to each
// item's max.
func TestLayoutPriorityAbsorption(t *testing.T) {
	low := desc(t, 0, splitview.Unbounded, splitview.PriorityLow, false)
	normal := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	high := desc(t, 0, splitview.Unbounded, splitview.PriorityHigh, false)

	e := newEngineWithSizes(t, []int{100, 100, 100}, []*splitview.Descriptor{low, normal, high})
	e.Layout(300)
	require.Equal(t, 300, e.ContentSize())

	e.Layout(330)
	assert.Equal(t, 100, e.GetViewSize(0), "low priority untouched while high still has room")
	assert.Equal(t, 100, e.GetViewSize(1), "normal priority untouched while high still has room")
	assert.Equal(t, 130, e.GetViewSize(2), "high priority absorbs the whole delta first")
}

// P8 continued: once the high-priority item caps out, normal absorbs the
// remainder before low.
func TestLayoutPriorityFallsThroughWhenCapped(t *testing.T) {
	low := desc(t, 0, splitview.Unbounded, splitview.PriorityLow, false)
	normal := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	high := desc(t, 0, 120, splitview.PriorityHigh, false)

	e := newEngineWithSizes(t, []int{100, 100, 100}, []*splitview.Descriptor{low, normal, high})
	e.Layout(300)

	e.Layout(340)
	assert.Equal(t, 100, e.GetViewSize(0), "low priority still untouched")
	assert.Equal(t, 120, e.GetViewSize(1), "normal absorbs what high could not")
	assert.Equal(t, 120, e.GetViewSize(2), "high priority caps at its max")
}

// P1: every visible item stays within its own bounds after a mutator,
// even when the requested delta is infeasible.
func TestResizeClampsToBounds(t *testing.T) {
	a := desc(t, 100, splitview.Unbounded, splitview.PriorityNormal, false)
	b := desc(t, 200, splitview.Unbounded, splitview.PriorityNormal, false)
	c := desc(t, 50, splitview.Unbounded, splitview.PriorityNormal, false)

	e := newEngineWithSizes(t, []int{200, 300, 100}, []*splitview.Descriptor{a, b, c})
	e.Layout(600)

	require.NoError(t, e.StartDrag(0, 0))
	require.NoError(t, e.ChangeDrag(-120))
	require.NoError(t, e.EndDrag())

	assert.GreaterOrEqual(t, e.GetViewSize(0), a.MinimumSize())
	assert.GreaterOrEqual(t, e.GetViewSize(1), b.MinimumSize())
	assert.GreaterOrEqual(t, e.GetViewSize(2), c.MinimumSize())
	assert.Equal(t, 600, e.ContentSize())
}

// P10: dragStart is matched by exactly one dragEnd, and OnDidChange fires
// exactly once per drag, after EndDrag, not on every ChangeDrag.
func TestDragBracketing(t *testing.T) {
	a := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	b := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	e := newEngineWithSizes(t, []int{200, 200}, []*splitview.Descriptor{a, b})
	e.Layout(400)

	starts, ends, changes := 0, 0, 0
	e.OnDidDragStart = func([]int) { starts++ }
	e.OnDidDragEnd = func([]int) { ends++ }
	e.OnDidChange = func([]int) { changes++ }

	require.NoError(t, e.StartDrag(0, 0))
	require.NoError(t, e.ChangeDrag(10))
	require.NoError(t, e.ChangeDrag(20))
	require.NoError(t, e.ChangeDrag(30))
	require.NoError(t, e.EndDrag())

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
	assert.Equal(t, 1, changes)
}

func TestChangeDragWithoutStartFails(t *testing.T) {
	e := splitview.New(splitview.Options{})
	err := e.ChangeDrag(10)
	assert.ErrorIs(t, err, splitview.ErrNoActiveDrag)
	err = e.EndDrag()
	assert.ErrorIs(t, err, splitview.ErrNoActiveDrag)
}
