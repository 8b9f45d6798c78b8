// Package splitview implements the algorithmic core of a resizable
// split-pane layout: an ordered sequence of views positioned along a
// single axis, separated by draggable sashes, with per-view minimum and
// maximum size constraints, priority-ordered resize absorption, and
// snap-to-hidden behavior.
//
// The package is deliberately headless: it owns no DOM, no pointer capture,
// and no rendering. A host binds a container's resize events to
// [Engine.Layout] and forwards sash pointer events to [Engine.StartDrag],
// [Engine.ChangeDrag], and [Engine.EndDrag]; the engine answers with
// view sizes, sash positions, and sash states through its callbacks and
// accessors.
package splitview
