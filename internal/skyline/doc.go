// Package skyline computes the outline of a set of rectangular buildings
// standing on a common baseline.
//
// Each building becomes a START and an END event. Events are ordered by x with
// same-x tie-breaks (see EventLess) and swept left to right while a multiset of
// active heights tracks which height is on top. A key point is emitted whenever
// that maximum changes.
package skyline
