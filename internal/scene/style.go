package scene

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/grindlemire/boxtree"
)

// Style mirrors boxtree.Style with YAML-friendly fields. Omitted fields keep
// their boxtree.DefaultStyle values.
type Style struct {
	Display   string  `yaml:"display,omitempty"`
	Width     *Length `yaml:"width,omitempty"`
	Height    *Length `yaml:"height,omitempty"`
	MinWidth  *Length `yaml:"min_width,omitempty"`
	MinHeight *Length `yaml:"min_height,omitempty"`
	MaxWidth  *Length `yaml:"max_width,omitempty"`
	MaxHeight *Length `yaml:"max_height,omitempty"`

	Direction string   `yaml:"direction,omitempty"`
	Justify   string   `yaml:"justify,omitempty"`
	Align     string   `yaml:"align_items,omitempty"`
	AlignSelf string   `yaml:"align_self,omitempty"`
	Gap       *float32 `yaml:"gap,omitempty"`

	Grow   *float32 `yaml:"grow,omitempty"`
	Shrink *float32 `yaml:"shrink,omitempty"`
	Basis  *Length  `yaml:"basis,omitempty"`

	Padding *EdgeList `yaml:"padding,omitempty"`
	Border  *EdgeList `yaml:"border,omitempty"`
	Margin  *EdgeList `yaml:"margin,omitempty"`

	Overflow       string   `yaml:"overflow,omitempty"`
	ScrollbarWidth *float32 `yaml:"scrollbar_width,omitempty"`
}

var (
	displays = map[string]boxtree.Display{
		"flex": boxtree.DisplayFlex,
		"none": boxtree.DisplayNone,
	}
	directions = map[string]boxtree.Direction{
		"row":    boxtree.Row,
		"column": boxtree.Column,
	}
	justifies = map[string]boxtree.Justify{
		"start":         boxtree.JustifyStart,
		"end":           boxtree.JustifyEnd,
		"center":        boxtree.JustifyCenter,
		"space-between": boxtree.JustifySpaceBetween,
		"space-around":  boxtree.JustifySpaceAround,
		"space-evenly":  boxtree.JustifySpaceEvenly,
	}
	aligns = map[string]boxtree.Align{
		"start":   boxtree.AlignStart,
		"end":     boxtree.AlignEnd,
		"center":  boxtree.AlignCenter,
		"stretch": boxtree.AlignStretch,
	}
	overflows = map[string]boxtree.Overflow{
		"visible": boxtree.OverflowVisible,
		"hidden":  boxtree.OverflowHidden,
		"scroll":  boxtree.OverflowScroll,
	}
)

// lookup resolves an enum keyword. An empty keyword keeps def.
func lookup[T any](errs *error, field, key string, table map[string]T, def T) T {
	if key == "" {
		return def
	}
	v, ok := table[key]
	if !ok {
		*errs = multierr.Append(*errs, fmt.Errorf("unknown %s %q", field, key))
		return def
	}
	return v
}

// Resolve converts the YAML style into a boxtree.Style, reporting every
// unknown keyword.
func (s Style) Resolve() (boxtree.Style, error) {
	var errs error
	out := boxtree.DefaultStyle()

	out.Display = lookup(&errs, "display", s.Display, displays, out.Display)
	out.Direction = lookup(&errs, "direction", s.Direction, directions, out.Direction)
	out.JustifyContent = lookup(&errs, "justify", s.Justify, justifies, out.JustifyContent)
	out.AlignItems = lookup(&errs, "align_items", s.Align, aligns, out.AlignItems)
	if s.AlignSelf != "" && s.AlignSelf != "auto" {
		a := lookup(&errs, "align_self", s.AlignSelf, aligns, boxtree.AlignStretch)
		out.AlignSelf = &a
	}
	out.Overflow = lookup(&errs, "overflow", s.Overflow, overflows, out.Overflow)

	setValue(&out.Width, s.Width)
	setValue(&out.Height, s.Height)
	setValue(&out.MinWidth, s.MinWidth)
	setValue(&out.MinHeight, s.MinHeight)
	setValue(&out.MaxWidth, s.MaxWidth)
	setValue(&out.MaxHeight, s.MaxHeight)
	setValue(&out.FlexBasis, s.Basis)

	setFloat(&out.Gap, s.Gap)
	setFloat(&out.FlexGrow, s.Grow)
	setFloat(&out.FlexShrink, s.Shrink)
	setFloat(&out.ScrollbarWidth, s.ScrollbarWidth)

	if s.Padding != nil {
		out.Padding = s.Padding.Edges
	}
	if s.Border != nil {
		out.Border = s.Border.Edges
	}
	if s.Margin != nil {
		out.Margin = s.Margin.Edges
	}
	return out, errs
}

func setValue(dst *boxtree.Value, l *Length) {
	if l != nil {
		*dst = l.Value
	}
}

func setFloat(dst *float32, v *float32) {
	if v != nil {
		*dst = *v
	}
}
