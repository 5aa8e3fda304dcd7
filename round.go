package boxtree

import "math"

// roundItem is a node waiting to be rounded together with the absolute,
// unrounded content-box origin of its parent.
type roundItem struct {
	id      NodeID
	originX float64
	originY float64
}

// round derives the rounded layout of every node under root from the unrounded
// ones. Each edge is snapped in absolute coordinates and the result is expressed
// relative to the parent's snapped origin, so error never accumulates with depth:
// a rounded value is always within one pixel of the unrounded one.
//
// A subtree root is snapped against its ancestors' last unrounded positions, so
// recomputing a subtree rounds it the same way a whole-tree pass would.
func (t *Tree) round(root NodeID) {
	ox, oy := t.contentOrigin(t.mustGet(root).parent)
	stack := []roundItem{{id: root, originX: ox, originY: oy}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.mustGet(it.id)
		u := n.unrounded
		if !t.rounding {
			n.rounded = u
		} else {
			n.rounded = roundLayout(u, it.originX, it.originY)
		}

		x := it.originX + float64(u.Location.X)
		y := it.originY + float64(u.Location.Y)
		cx := x + float64(u.Border.Left+u.Padding.Left)
		cy := y + float64(u.Border.Top+u.Padding.Top)
		for _, child := range n.children {
			stack = append(stack, roundItem{id: child, originX: cx, originY: cy})
		}
	}
}

// contentOrigin is the absolute, unrounded position of id's content box, or the
// origin for NoNode. It accumulates from the root down, in the same order round does.
func (t *Tree) contentOrigin(id NodeID) (x, y float64) {
	var chain []Layout
	for id != NoNode {
		n := t.mustGet(id)
		chain = append(chain, n.unrounded)
		id = n.parent
	}
	for i := len(chain) - 1; i >= 0; i-- {
		u := chain[i]
		x += float64(u.Location.X)
		y += float64(u.Location.Y)
		x += float64(u.Border.Left + u.Padding.Left)
		y += float64(u.Border.Top + u.Padding.Top)
	}
	return x, y
}

// roundLayout snaps u, whose parent content box starts at (ox, oy) in absolute
// unrounded coordinates.
func roundLayout(u Layout, ox, oy float64) Layout {
	x := ox + float64(u.Location.X)
	y := oy + float64(u.Location.Y)
	right := x + float64(u.Size.Width)
	bottom := y + float64(u.Size.Height)

	r := u
	r.Location.X = snap(x) - snap(ox)
	r.Location.Y = snap(y) - snap(oy)
	r.Size.Width = snap(right) - snap(x)
	r.Size.Height = snap(bottom) - snap(y)

	// Border and padding nest inward from each side of the border box.
	bl := x + float64(u.Border.Left)
	bt := y + float64(u.Border.Top)
	br := right - float64(u.Border.Right)
	bb := bottom - float64(u.Border.Bottom)
	r.Border.Left = snap(bl) - snap(x)
	r.Border.Top = snap(bt) - snap(y)
	r.Border.Right = snap(right) - snap(br)
	r.Border.Bottom = snap(bottom) - snap(bb)

	r.Padding.Left = snap(bl+float64(u.Padding.Left)) - snap(bl)
	r.Padding.Top = snap(bt+float64(u.Padding.Top)) - snap(bt)
	r.Padding.Right = snap(br) - snap(br-float64(u.Padding.Right))
	r.Padding.Bottom = snap(bb) - snap(bb-float64(u.Padding.Bottom))

	r.Margin.Left = snap(x) - snap(x-float64(u.Margin.Left))
	r.Margin.Top = snap(y) - snap(y-float64(u.Margin.Top))
	r.Margin.Right = snap(right+float64(u.Margin.Right)) - snap(right)
	r.Margin.Bottom = snap(bottom+float64(u.Margin.Bottom)) - snap(bottom)

	cx := bl + float64(u.Padding.Left)
	cy := bt + float64(u.Padding.Top)
	r.ContentSize.Width = snap(cx+float64(u.ContentSize.Width)) - snap(cx)
	r.ContentSize.Height = snap(cy+float64(u.ContentSize.Height)) - snap(cy)

	r.ScrollbarSize.Width = snap(float64(u.ScrollbarSize.Width))
	r.ScrollbarSize.Height = snap(float64(u.ScrollbarSize.Height))
	return r
}

// snap rounds half up. Unlike math.Round it treats negative coordinates the same
// way as positive ones, which keeps snap(a+d)-snap(a) strictly within one pixel of d.
func snap(v float64) float32 {
	return float32(math.Floor(v + 0.5))
}
