package layout

// Layout holds the computed box geometry of a node.
// It is a value: recomputation replaces it wholesale.
type Layout struct {
	// Order is the paint order among siblings.
	Order uint32

	// Location is the top-left of the border box, relative to the
	// parent's content-box origin.
	Location Point

	// Size is the border-box size.
	Size Size[float32]

	// ContentSize is the extent of the node's content, which may overflow Size.
	// For measured leaves it is exactly the measured size.
	ContentSize Size[float32]

	// ScrollbarSize is the room reserved for scrollbars on each axis.
	ScrollbarSize Size[float32]

	Border  Edges
	Padding Edges
	Margin  Edges
}

// Rect returns the border box as a rectangle in the parent's content coordinates.
func (l Layout) Rect() Rect {
	return NewRect(l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
}

// ContentRect returns the content box in the node's own border-box coordinates.
func (l Layout) ContentRect() Rect {
	return NewRect(0, 0, l.Size.Width, l.Size.Height).Inset(l.Padding.Add(l.Border))
}
