package splitview

import "errors"

// ErrIndexOutOfBounds is the sentinel wrapped by every bounds-violation
// error returned from the engine. Operations that require a valid index
// (RemoveView, SetViewVisible, IsViewVisible) fail fast with this error
// and leave engine state unmutated. Operations that tolerate an invalid
// index (GetViewSize, ResizeView) do not return it; see their doc comments.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrInvalidDescriptor reports a descriptor whose minimum exceeds its
// maximum, which the spec treats as programmer error.
var ErrInvalidDescriptor = errors.New("minimum size exceeds maximum size")

// ErrNoActiveDrag is returned by ChangeDrag/EndDrag when no sash is
// currently being dragged.
var ErrNoActiveDrag = errors.New("no sash drag in progress")
