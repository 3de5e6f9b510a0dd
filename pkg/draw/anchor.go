package draw

import "image"

// Edges leave a node at the middle of its right side and enter the target
// at the middle of its left side, matching the web editor's port layout.
// Both anchors are pure functions of the node's bounds, so edge geometry
// is rebuilt from scratch every frame and can never go stale after a move.

// RightAnchor returns the source anchor of a node with the given bounds:
// one cell right of the box, vertically centered.
func RightAnchor(bounds image.Rectangle) image.Point {
	return image.Pt(bounds.Max.X, bounds.Min.Y+bounds.Dy()/2)
}

// LeftAnchor returns the target anchor: the left edge, vertically centered.
func LeftAnchor(bounds image.Rectangle) image.Point {
	return image.Pt(bounds.Min.X, bounds.Min.Y+bounds.Dy()/2)
}
