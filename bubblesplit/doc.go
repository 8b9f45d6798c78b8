// Package bubblesplit is a terminal reference binding for splitview: a
// bubbletea model that owns a row or column of child models separated by
// draggable sashes, delegating all sizing and drag math to a
// [splitview.Engine] instead of reimplementing proportion arithmetic
// inline.
package bubblesplit
