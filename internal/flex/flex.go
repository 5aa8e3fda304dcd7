package flex

import (
	"errors"
	"fmt"
	"math"

	"github.com/grindlemire/boxtree/internal/layout"
)

// ErrInvalidStyle is returned for styles the engine cannot lay out, such as
// negative sizes or NaN amounts.
var ErrInvalidStyle = errors.New("invalid style")

// Engine lays out nodes with flexbox rules. The zero value is ready to use.
type Engine struct{}

// New returns a flexbox engine.
func New() *Engine {
	return &Engine{}
}

var _ layout.Engine = (*Engine)(nil)

// ChildSpace returns the content box the node offers its children: its own
// border box, when that can be determined up front, less padding, border and
// scrollbars. Axes the node sizes to its content pass the parent's constraint on.
func (e *Engine) ChildSpace(style layout.Style, known layout.Size[layout.Dim], available layout.Size[layout.AvailableSpace]) layout.Size[layout.AvailableSpace] {
	if style.Display == layout.DisplayNone {
		return layout.DefiniteSpace(0, 0)
	}

	inset := style.Inset()
	sb := style.Scrollbar()
	w := outerSpace(style.Width, style.MinWidth, style.MaxWidth, known.Width, available.Width, style.Margin.Horizontal())
	h := outerSpace(style.Height, style.MinHeight, style.MaxHeight, known.Height, available.Height, style.Margin.Vertical())
	return layout.Space(w.Sub(inset.Horizontal()+sb.Width), h.Sub(inset.Vertical()+sb.Height))
}

func outerSpace(size, lo, hi layout.Value, known layout.Dim, available layout.AvailableSpace, margin float32) layout.AvailableSpace {
	if v, ok := definiteSize(size, lo, hi, known, available); ok {
		return layout.Definite(v)
	}
	return available.Sub(margin)
}

// ComputeBox sizes the node and places its children.
func (e *Engine) ComputeBox(in layout.BoxInput) (layout.BoxOutput, error) {
	out := layout.BoxOutput{Children: make([]layout.Placement, len(in.Children))}
	for i := range out.Children {
		out.Children[i].Order = uint32(i)
	}

	s := in.Style
	if s.Display == layout.DisplayNone {
		return out, nil
	}
	if err := validate(s); err != nil {
		return layout.BoxOutput{}, err
	}
	for _, c := range in.Children {
		if err := validate(c.Style); err != nil {
			return layout.BoxOutput{}, fmt.Errorf("child %s: %w", c.Node, err)
		}
	}

	out.Border = s.Border
	out.Padding = s.Padding
	out.Margin = s.Margin
	out.ScrollbarSize = s.Scrollbar()

	inset := s.Inset()
	extra := layout.Sz(inset.Horizontal()+out.ScrollbarSize.Width, inset.Vertical()+out.ScrollbarSize.Height)

	c := newContainer(s, in)
	c.collect(in.Children)

	content := c.naturalContent()
	if in.Measured != nil {
		content = *in.Measured
	}

	width, ok := definiteSize(s.Width, s.MinWidth, s.MaxWidth, in.KnownDimensions.Width, in.AvailableSpace.Width)
	if !ok {
		width = fitContent(content.Width+extra.Width, extra.Width, s.MinWidth, s.MaxWidth, in.AvailableSpace.Width, s.Margin.Horizontal())
	}
	height, ok := definiteSize(s.Height, s.MinHeight, s.MaxHeight, in.KnownDimensions.Height, in.AvailableSpace.Height)
	if !ok {
		height = fitContent(content.Height+extra.Height, extra.Height, s.MinHeight, s.MaxHeight, in.AvailableSpace.Height, s.Margin.Vertical())
	}
	out.Size = layout.Sz(width, height)

	if len(in.Children) > 0 {
		c.arrange(max(0, width-extra.Width), max(0, height-extra.Height), out.Children)
		content = c.extent(out.Children)
		if in.Measured != nil {
			content = *in.Measured
		}
	}
	out.ContentSize = content
	return out, nil
}

// definiteSize returns the border-box size along one axis when it does not depend
// on content: fixed by the caller, or set by the style.
func definiteSize(size, lo, hi layout.Value, known layout.Dim, available layout.AvailableSpace) (float32, bool) {
	if known.Known {
		return known.Px, true
	}
	containing := available.Dim()
	if d := size.Resolve(containing); d.Known {
		return clamp(d.Px, minOf(lo, containing), maxOf(hi, containing)), true
	}
	return 0, false
}

// fitContent sizes an auto axis to its content, shrunk to the definite space
// left after margins but never below the node's own padding and border.
func fitContent(natural, floor float32, lo, hi layout.Value, available layout.AvailableSpace, margin float32) float32 {
	v := natural
	if available.IsDefinite() {
		v = min(v, available.Px-margin)
	}
	v = max(v, floor)
	containing := available.Dim()
	return max(0, clamp(v, minOf(lo, containing), maxOf(hi, containing)))
}

// minOf resolves a min constraint; auto means no minimum.
func minOf(v layout.Value, containing layout.Dim) float32 {
	return v.ResolveOr(containing, 0)
}

// maxOf resolves a max constraint; auto means no maximum.
func maxOf(v layout.Value, containing layout.Dim) float32 {
	return v.ResolveOr(containing, float32(math.Inf(1)))
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins (matches CSS behavior).
func clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func validate(s layout.Style) error {
	for _, v := range []layout.Value{s.Width, s.Height, s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight, s.FlexBasis} {
		if bad(v.Amount) || (v.Unit != layout.UnitAuto && v.Amount < 0) {
			return fmt.Errorf("%w: size %s", ErrInvalidStyle, v)
		}
	}
	for _, e := range []layout.Edges{s.Padding, s.Border} {
		if bad(e.Top) || bad(e.Right) || bad(e.Bottom) || bad(e.Left) ||
			e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			return fmt.Errorf("%w: negative padding or border", ErrInvalidStyle)
		}
	}
	m := s.Margin
	if bad(m.Top) || bad(m.Right) || bad(m.Bottom) || bad(m.Left) {
		return fmt.Errorf("%w: margin is not finite", ErrInvalidStyle)
	}
	switch {
	case bad(s.FlexGrow) || s.FlexGrow < 0:
		return fmt.Errorf("%w: flex grow %g", ErrInvalidStyle, s.FlexGrow)
	case bad(s.FlexShrink) || s.FlexShrink < 0:
		return fmt.Errorf("%w: flex shrink %g", ErrInvalidStyle, s.FlexShrink)
	case bad(s.Gap) || s.Gap < 0:
		return fmt.Errorf("%w: gap %g", ErrInvalidStyle, s.Gap)
	case bad(s.ScrollbarWidth) || s.ScrollbarWidth < 0:
		return fmt.Errorf("%w: scrollbar width %g", ErrInvalidStyle, s.ScrollbarWidth)
	}
	return nil
}

func bad(v float32) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
