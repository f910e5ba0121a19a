// Package cursor provides cursor movement and selections over a document.
//
// Movement is a pure function of the document shape and the current
// position. Vertical moves keep the requested column ("ragged right"): the
// column is carried from the current position and clamped only once, to the
// destination line's length.
//
// Selections use an anchor/active model. Anchor is where the selection
// started and Active follows the cursor. Membership is half-open and
// independent of direction: a point p is selected iff lo <= p < hi where
// (lo, hi) is the normalized pair.
package cursor
