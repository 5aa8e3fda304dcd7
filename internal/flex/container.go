package flex

import "github.com/grindlemire/boxtree/internal/layout"

// flexItem holds intermediate calculation state for a child.
// It lives for one ComputeBox call and is never stored.
type flexItem struct {
	index int
	style layout.Style
	size  layout.Size[float32] // Size the child computed for itself

	// Main axis
	base        float32 // Flex base size
	hypo        float32 // Base size clamped to min/max
	target      float32 // Unclamped size while resolving flexible lengths
	mainSize    float32
	minMain     float32
	maxMain     float32
	marginStart float32
	marginEnd   float32
	frozen      bool

	// Cross axis
	crossSize        float32
	crossMarginStart float32
	crossMarginEnd   float32

	mainPos  float32
	crossPos float32
}

func (it *flexItem) outerHypo() float32 {
	return it.hypo + it.marginStart + it.marginEnd
}

func (it *flexItem) outerMain() float32 {
	return it.mainSize + it.marginStart + it.marginEnd
}

// container is one flexbox line: the node's style plus its visible children.
type container struct {
	style layout.Style
	isRow bool
	space layout.Size[layout.AvailableSpace] // Space the children were sized under
	items []flexItem
}

func newContainer(s layout.Style, in layout.BoxInput) *container {
	return &container{
		style: s,
		isRow: s.Direction == layout.Row,
		space: (&Engine{}).ChildSpace(s, in.KnownDimensions, in.AvailableSpace),
	}
}

// main and cross pick the axis components of a size.
func (c *container) main(s layout.Size[float32]) float32 {
	if c.isRow {
		return s.Width
	}
	return s.Height
}

func (c *container) cross(s layout.Size[float32]) float32 {
	if c.isRow {
		return s.Height
	}
	return s.Width
}

func (c *container) mainSpace() layout.Dim {
	if c.isRow {
		return c.space.Width.Dim()
	}
	return c.space.Height.Dim()
}

// collect computes base sizes and flex factors for every displayed child.
// Hidden children take no space and are left out of the line.
func (c *container) collect(children []layout.ChildBox) {
	c.items = make([]flexItem, 0, len(children))
	mainDim := c.mainSpace()

	for i, child := range children {
		cs := child.Style
		if cs.Display == layout.DisplayNone {
			continue
		}

		it := flexItem{index: i, style: cs, size: child.Size}
		var minV, maxV layout.Value
		if c.isRow {
			minV, maxV = cs.MinWidth, cs.MaxWidth
			it.marginStart, it.marginEnd = cs.Margin.Left, cs.Margin.Right
			it.crossMarginStart, it.crossMarginEnd = cs.Margin.Top, cs.Margin.Bottom
		} else {
			minV, maxV = cs.MinHeight, cs.MaxHeight
			it.marginStart, it.marginEnd = cs.Margin.Top, cs.Margin.Bottom
			it.crossMarginStart, it.crossMarginEnd = cs.Margin.Left, cs.Margin.Right
		}

		// An explicit basis wins; auto falls back to the size the child chose.
		it.base = cs.FlexBasis.ResolveOr(mainDim, c.main(child.Size))
		it.minMain = minOf(minV, mainDim)
		it.maxMain = maxOf(maxV, mainDim)
		it.hypo = clamp(it.base, it.minMain, it.maxMain)
		c.items = append(c.items, it)
	}
}

func (c *container) totalGap() float32 {
	return c.style.Gap * float32(max(0, len(c.items)-1))
}

// naturalContent is the content size the children want before any flexing.
func (c *container) naturalContent() layout.Size[float32] {
	var mainSum, crossMax float32
	for i := range c.items {
		it := &c.items[i]
		mainSum += it.outerHypo()
		crossMax = max(crossMax, c.cross(it.size)+it.crossMarginStart+it.crossMarginEnd)
	}
	mainSum += c.totalGap()
	if c.isRow {
		return layout.Sz(mainSum, crossMax)
	}
	return layout.Sz(crossMax, mainSum)
}

// arrange distributes the children inside a content box of innerW x innerH
// and writes their placements, relative to the content-box origin.
func (c *container) arrange(innerW, innerH float32, placements []layout.Placement) {
	if len(c.items) == 0 {
		return
	}

	innerMain, innerCross := innerW, innerH
	if !c.isRow {
		innerMain, innerCross = innerH, innerW
	}
	gap := c.style.Gap

	c.resolveFlexible(innerMain - c.totalGap())

	// Recalculate free space after min/max constraints for justify.
	used := c.totalGap()
	for i := range c.items {
		used += c.items[i].outerMain()
	}
	free := innerMain - used

	offset := justifyOffset(c.style.JustifyContent, free, len(c.items))
	spacing := justifySpacing(c.style.JustifyContent, free, len(c.items))
	for i := range c.items {
		it := &c.items[i]
		it.mainPos = offset + it.marginStart
		offset += it.outerMain() + gap + spacing
	}

	crossDim := layout.Known(innerCross)
	for i := range c.items {
		it := &c.items[i]
		align := c.style.AlignItems
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
		}

		crossStyle, minV, maxV := it.style.Height, it.style.MinHeight, it.style.MaxHeight
		if !c.isRow {
			crossStyle, minV, maxV = it.style.Width, it.style.MinWidth, it.style.MaxWidth
		}
		margins := it.crossMarginStart + it.crossMarginEnd

		if align == layout.AlignStretch && crossStyle.IsAuto() {
			it.crossSize = clamp(max(0, innerCross-margins), minOf(minV, crossDim), maxOf(maxV, crossDim))
		} else {
			it.crossSize = c.cross(it.size)
		}
		it.crossPos = it.crossMarginStart + alignOffset(align, innerCross, it.crossSize+margins)
	}

	for i := range c.items {
		it := &c.items[i]
		p := &placements[it.index]
		if c.isRow {
			p.Location = layout.Point{X: it.mainPos, Y: it.crossPos}
			p.Size = layout.Sz(it.mainSize, it.crossSize)
		} else {
			p.Location = layout.Point{X: it.crossPos, Y: it.mainPos}
			p.Size = layout.Sz(it.crossSize, it.mainSize)
		}
	}
}

// resolveFlexible grows or shrinks items to fill space along the main axis.
// Items that hit a min or max are frozen there and the rest of the free space
// is shared again among the others, until nothing violates a constraint.
func (c *container) resolveFlexible(space float32) {
	for i := range c.items {
		c.items[i].frozen = false
		c.items[i].mainSize = c.items[i].hypo
	}

	for range len(c.items) + 1 {
		free := space
		var grow, shrink float32
		for i := range c.items {
			it := &c.items[i]
			if it.frozen {
				free -= it.outerMain()
				continue
			}
			free -= it.base + it.marginStart + it.marginEnd
			grow += it.style.FlexGrow
			shrink += it.style.FlexShrink * it.base
		}

		var violation float32
		for i := range c.items {
			it := &c.items[i]
			if it.frozen {
				continue
			}
			it.target = it.base
			switch {
			case free > 0 && grow > 0:
				it.target += free * it.style.FlexGrow / grow
			case free < 0 && shrink > 0:
				it.target += free * it.style.FlexShrink * it.base / shrink
			}
			it.mainSize = max(0, clamp(it.target, it.minMain, it.maxMain))
			violation += it.mainSize - it.target
		}

		done := true
		for i := range c.items {
			it := &c.items[i]
			if it.frozen {
				continue
			}
			switch {
			case violation == 0,
				violation > 0 && it.mainSize > it.target,
				violation < 0 && it.mainSize < it.target:
				it.frozen = true
			default:
				done = false
			}
		}
		if done {
			return
		}
	}
}

// extent is the area the placed children cover, margins included.
func (c *container) extent(placements []layout.Placement) layout.Size[float32] {
	var w, h float32
	for i := range c.items {
		it := &c.items[i]
		p := placements[it.index]
		m := it.style.Margin
		w = max(w, p.Location.X+p.Size.Width+m.Right)
		h = max(h, p.Location.Y+p.Size.Height+m.Bottom)
	}
	return layout.Sz(w, h)
}

// justifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func justifyOffset(justify layout.Justify, free float32, count int) float32 {
	if free <= 0 || count == 0 {
		return 0
	}

	switch justify {
	case layout.JustifyEnd:
		return free
	case layout.JustifyCenter:
		return free / 2
	case layout.JustifySpaceAround:
		return free / float32(count*2)
	case layout.JustifySpaceEvenly:
		return free / float32(count+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func justifySpacing(justify layout.Justify, free float32, count int) float32 {
	if free <= 0 || count <= 1 {
		return 0
	}

	switch justify {
	case layout.JustifySpaceBetween:
		return free / float32(count-1)
	case layout.JustifySpaceAround:
		return free / float32(count)
	case layout.JustifySpaceEvenly:
		return free / float32(count+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the offset for positioning a child on the cross axis.
func alignOffset(align layout.Align, crossSize, itemSize float32) float32 {
	switch align {
	case layout.AlignEnd:
		return crossSize - itemSize
	case layout.AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
