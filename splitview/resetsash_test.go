package splitview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonantlabs/splitview/splitview"
)

func TestResetSashFiresWithoutMutatingSizes(t *testing.T) {
	e := newEngineWithSizes(t, []int{100, 300}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	e.Layout(400)

	var firedIndex = -1
	e.OnSashReset = func(index int) { firedIndex = index }

	require.NoError(t, e.ResetSash(0))
	assert.Equal(t, 0, firedIndex)
	assert.Equal(t, []int{100, 300}, sizesOf(e))
}

func TestResetSashSuppressedWhenNeighborHidden(t *testing.T) {
	a := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, true)
	b := desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false)
	e := newEngineWithSizes(t, []int{200, 200}, []*splitview.Descriptor{a, b})
	e.Layout(400)
	require.NoError(t, e.SetViewVisible(0, false))

	fired := false
	e.OnSashReset = func(int) { fired = true }

	require.NoError(t, e.ResetSash(0))
	assert.False(t, fired)
}

func TestResetSashOutOfRange(t *testing.T) {
	e := newEngineWithSizes(t, []int{100}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	assert.ErrorIs(t, e.ResetSash(0), splitview.ErrIndexOutOfBounds)
}
