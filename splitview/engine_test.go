package splitview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonantlabs/splitview/splitview"
)

func desc(t *testing.T, min, max int, prio splitview.Priority, snap bool) *splitview.Descriptor {
	t.Helper()
	d, err := splitview.NewDescriptor(min, max, prio, snap)
	require.NoError(t, err)
	return d
}

func newEngineWithSizes(t *testing.T, sizes []int, descs []*splitview.Descriptor) *splitview.Engine {
	t.Helper()
	e := splitview.New(splitview.Options{})
	for i, d := range descs {
		require.NoError(t, e.AddView(d, splitview.Exact(sizes[i]), i))
	}
	return e
}

func TestNewDescriptorRejectsInvertedBounds(t *testing.T) {
	_, err := splitview.NewDescriptor(100, 50, splitview.PriorityNormal, false)
	assert.ErrorIs(t, err, splitview.ErrInvalidDescriptor)
}

func TestSashCountTracksViewCount(t *testing.T) {
	e := splitview.New(splitview.Options{})
	assert.Equal(t, 0, e.SashCount())

	require.NoError(t, e.AddView(desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false), splitview.Exact(100), 0))
	assert.Equal(t, 0, e.SashCount())

	require.NoError(t, e.AddView(desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false), splitview.Exact(100), 1))
	assert.Equal(t, 1, e.SashCount())

	require.NoError(t, e.AddView(desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false), splitview.Exact(100), 0))
	assert.Equal(t, 2, e.SashCount())

	_, err := e.RemoveView(0)
	require.NoError(t, err)
	assert.Equal(t, 1, e.SashCount())
}

func TestSashPositionIsPrefixSum(t *testing.T) {
	e := newEngineWithSizes(t, []int{150, 250}, []*splitview.Descriptor{
		desc(t, 30, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 30, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	e.Layout(400)
	require.Equal(t, 1, e.SashCount())
	assert.Equal(t, 150, e.Sash(0).Position())
}

func TestGetViewSizeOutOfRange(t *testing.T) {
	e := newEngineWithSizes(t, []int{100}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	assert.Equal(t, -1, e.GetViewSize(5))
	assert.Equal(t, -1, e.GetViewSize(-1))
	assert.Equal(t, 100, e.GetViewSize(0))
}

func TestSetViewVisibleRoundTrip(t *testing.T) {
	e := newEngineWithSizes(t, []int{100, 100}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	e.Layout(200)

	require.NoError(t, e.SetViewVisible(0, false))
	visible, err := e.IsViewVisible(0)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Equal(t, 0, e.GetViewSize(0))

	require.NoError(t, e.SetViewVisible(0, true))
	visible, err = e.IsViewVisible(0)
	require.NoError(t, err)
	assert.True(t, visible)
	assert.Equal(t, 100, e.GetViewSize(0))
}

func TestMoveViewPreservesHiddenState(t *testing.T) {
	e := newEngineWithSizes(t, []int{100, 100, 100}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	e.Layout(300)
	require.NoError(t, e.SetViewVisible(0, false))

	require.NoError(t, e.MoveView(0, 2))

	visible, err := e.IsViewVisible(2)
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestAddViewDistributeReequalizesAgainstLaidOutContainer(t *testing.T) {
	pref := 250
	mk := func() *splitview.Descriptor {
		return &splitview.Descriptor{Min: 0, Max: splitview.Unbounded, Preferred: &pref}
	}

	e := splitview.New(splitview.Options{})
	require.NoError(t, e.AddView(mk(), splitview.Exact(300), 0))
	require.NoError(t, e.AddView(mk(), splitview.Exact(300), 1))
	e.Layout(600)
	assert.Equal(t, []int{300, 300}, sizesOf(e))

	require.NoError(t, e.AddView(mk(), splitview.Distribute(), 2))
	assert.Equal(t, []int{200, 200, 200}, sizesOf(e))
}

func TestRemoveViewDistributeReequalizesRemainingItems(t *testing.T) {
	e := newEngineWithSizes(t, []int{100, 100, 400}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	e.Layout(600)

	_, err := e.RemoveView(2, splitview.Distribute())
	require.NoError(t, err)
	assert.Equal(t, []int{300, 300}, sizesOf(e))
}

func TestIndexErrorsLeaveStateUnmutated(t *testing.T) {
	e := newEngineWithSizes(t, []int{100}, []*splitview.Descriptor{
		desc(t, 0, splitview.Unbounded, splitview.PriorityNormal, false),
	})
	_, err := e.RemoveView(5)
	assert.ErrorIs(t, err, splitview.ErrIndexOutOfBounds)
	assert.Equal(t, 1, e.ViewCount())

	err = e.SetViewVisible(5, true)
	assert.ErrorIs(t, err, splitview.ErrIndexOutOfBounds)

	_, err = e.IsViewVisible(5)
	assert.ErrorIs(t, err, splitview.ErrIndexOutOfBounds)
}
