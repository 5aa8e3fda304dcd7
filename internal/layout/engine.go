package layout

import "fmt"

// NodeID identifies a node in a tree. Zero is never a valid id.
// The low 32 bits hold the slot index plus one, the high 32 bits its generation.
type NodeID uint64

func (id NodeID) String() string {
	if id == 0 {
		return "node(none)"
	}
	return fmt.Sprintf("node(%dv%d)", uint32(id)-1, uint32(id>>32))
}

// Engine is a layout algorithm. The tree driver calls it once per node it needs to
// size or lay out; it never sees the tree itself, only one node and its children.
type Engine interface {
	// ChildSpace returns the available space a node hands its children,
	// typically the content box left after padding, border and scrollbars.
	ChildSpace(style Style, known Size[Dim], available Size[AvailableSpace]) Size[AvailableSpace]

	// ComputeBox sizes a node and places its children.
	// The output must hold exactly one Placement per input child, in order.
	ComputeBox(in BoxInput) (BoxOutput, error)
}

// BoxInput is everything an Engine gets to compute one node.
type BoxInput struct {
	Node            NodeID
	Style           Style
	KnownDimensions Size[Dim]
	AvailableSpace  Size[AvailableSpace]

	// Children hold the size each child computed for itself under ChildSpace.
	Children []ChildBox

	// Measured is the intrinsic content size reported by the measure function.
	// It is only set for leaves when one was supplied.
	Measured *Size[float32]
}

// ChildBox is a child as seen by its parent's algorithm.
type ChildBox struct {
	Node  NodeID
	Style Style
	Size  Size[float32] // Border box, margin excluded
}

// BoxOutput is the result of computing one node.
type BoxOutput struct {
	Size          Size[float32]
	ContentSize   Size[float32]
	ScrollbarSize Size[float32]
	Border        Edges
	Padding       Edges
	Margin        Edges

	Children []Placement
}

// Placement is where a parent puts a child and how big it makes it.
type Placement struct {
	Location Point
	Size     Size[float32]
	Order    uint32
}
