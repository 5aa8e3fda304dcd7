package layout

// Display selects whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota // Lay out children with flexbox
	DisplayNone                // Hidden; zero-sized and skipped by the parent
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Overflow controls whether a node reserves room for scrollbars.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Reserves ScrollbarWidth on both axes
)

// Style contains all layout properties for a node.
type Style struct {
	Display Display

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            float32 // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Initial main size; auto uses the item's size
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Border  Edges
	Margin  Edges

	Overflow       Overflow
	ScrollbarWidth float32
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Auto(),
		MinHeight:  Auto(),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		FlexBasis:  Auto(),
	}
}

// Size returns the preferred width and height.
func (s Style) Size() Size[Value] {
	return Size[Value]{Width: s.Width, Height: s.Height}
}

// Inset returns padding plus border, the distance from the border box to the content box.
func (s Style) Inset() Edges {
	return s.Padding.Add(s.Border)
}

// Scrollbar returns the space reserved for scrollbars: a vertical scrollbar takes width,
// a horizontal one takes height.
func (s Style) Scrollbar() Size[float32] {
	if s.Overflow != OverflowScroll {
		return Size[float32]{}
	}
	return Sz(s.ScrollbarWidth, s.ScrollbarWidth)
}
