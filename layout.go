// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxtree

import "github.com/grindlemire/boxtree/internal/layout"

// NodeID is an opaque handle to a node in a Tree. Zero is never a valid node.
type NodeID = layout.NodeID

// NoNode is the zero NodeID, returned as the parent of a root.
const NoNode NodeID = 0

// Display selects whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Overflow controls scrollbar reservation.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Layout holds the computed box geometry for a node.
type Layout = layout.Layout

// Size represents a width/height pair.
type Size[T any] = layout.Size[T]

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Dim is a known-or-unknown length along one axis.
type Dim = layout.Dim

// AvailableSpace is the per-axis constraint a layout is computed under.
type AvailableSpace = layout.AvailableSpace

// SpaceKind selects the kind of constraint an AvailableSpace expresses.
type SpaceKind = layout.SpaceKind

const (
	SpaceDefinite   = layout.SpaceDefinite
	SpaceMinContent = layout.SpaceMinContent
	SpaceMaxContent = layout.SpaceMaxContent
)

// Engine is the layout algorithm the tree drives.
type Engine = layout.Engine

// BoxInput, BoxOutput, ChildBox and Placement make up the Engine protocol.
type (
	BoxInput  = layout.BoxInput
	BoxOutput = layout.BoxOutput
	ChildBox  = layout.ChildBox
	Placement = layout.Placement
)

// Fixed creates a Value of px pixels.
func Fixed(px float32) Value {
	return layout.Fixed(px)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// Definite returns available space of exactly px pixels.
func Definite(px float32) AvailableSpace {
	return layout.Definite(px)
}

// MinContent returns a min-content constraint.
func MinContent() AvailableSpace {
	return layout.MinContent()
}

// MaxContent returns a max-content constraint.
func MaxContent() AvailableSpace {
	return layout.MaxContent()
}

// DefiniteSpace returns available space fixed on both axes.
func DefiniteSpace(width, height float32) Size[AvailableSpace] {
	return layout.DefiniteSpace(width, height)
}

// Space builds an available-space Size from two axes.
func Space(width, height AvailableSpace) Size[AvailableSpace] {
	return layout.Space(width, height)
}

// Sz builds a float Size.
func Sz(width, height float32) Size[float32] {
	return layout.Sz(width, height)
}

// Known returns a known dimension of px pixels.
func Known(px float32) Dim {
	return layout.Known(px)
}

// Unknown returns a dimension with no value.
func Unknown() Dim {
	return layout.Unknown()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
