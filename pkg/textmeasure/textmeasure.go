// Package textmeasure sizes leaves that hold monospace text, as drawn in a
// terminal where each cell is one unit wide and one line is one unit tall.
//
// Measure plugs into boxtree.Tree.ComputeLayoutWithMeasure. A leaf's context is
// either a string or a Text; leaves with no context measure as empty.
package textmeasure

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/boxtree"
)

// ErrUnsupportedContext is returned for leaf contexts that hold no text.
var ErrUnsupportedContext = errors.New("unsupported leaf context")

// Text is leaf content with wrapping control.
type Text struct {
	Content string
	NoWrap  bool // Keep each line whole regardless of the available width
}

var _ boxtree.MeasureFunc = Measure

// Measure reports the size of a leaf's text. Words wrap to the width the leaf
// can give its content: under a min-content constraint that is the widest word,
// under max-content each line stays whole.
func Measure(in boxtree.MeasureInput) (boxtree.Size[float32], error) {
	text, err := textOf(in.Context)
	if err != nil {
		return boxtree.Size[float32]{}, fmt.Errorf("%s: %w", in.Node, err)
	}

	inset := in.Style.Inset()
	sb := in.Style.Scrollbar()
	chromeW := inset.Horizontal() + sb.Width
	chromeH := inset.Vertical() + sb.Height

	limit := math.MaxInt
	if !text.NoWrap {
		limit = widthLimit(text.Content, in, chromeW)
	}
	lines := Lines(text.Content, limit)

	width := float32(0)
	for _, line := range lines {
		width = max(width, float32(runewidth.StringWidth(line)))
	}
	size := boxtree.Sz(width, float32(len(lines)))

	// Axes the layout already fixed report the content box they leave.
	if k := in.KnownDimensions.Width; k.Known {
		size.Width = max(0, k.Px-chromeW)
	}
	if k := in.KnownDimensions.Height; k.Known {
		size.Height = max(0, k.Px-chromeH)
	}
	return size, nil
}

func textOf(context any) (Text, error) {
	switch c := context.(type) {
	case nil:
		return Text{}, nil
	case string:
		return Text{Content: c}, nil
	case Text:
		return c, nil
	case *Text:
		if c == nil {
			return Text{}, nil
		}
		return *c, nil
	case fmt.Stringer:
		return Text{Content: c.String()}, nil
	default:
		return Text{}, fmt.Errorf("%w: %T", ErrUnsupportedContext, context)
	}
}

// widthLimit is the number of cells a line may take.
func widthLimit(content string, in boxtree.MeasureInput, chrome float32) int {
	if k := in.KnownDimensions.Width; k.Known {
		return cells(k.Px - chrome)
	}
	switch avail := in.AvailableSpace.Width; avail.Kind {
	case boxtree.SpaceDefinite:
		return cells(avail.Px - chrome - in.Style.Margin.Horizontal())
	case boxtree.SpaceMinContent:
		return MinContentWidth(content)
	default:
		return math.MaxInt
	}
}

// cells converts a pixel width to whole cells. Widths past MaxInt32 cells are
// unbounded.
func cells(px float32) int {
	f := math.Floor(float64(px))
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt
	}
	return int(f)
}

// MinContentWidth is the width of the widest word.
func MinContentWidth(s string) int {
	w := 0
	for _, word := range strings.Fields(s) {
		w = max(w, runewidth.StringWidth(word))
	}
	return w
}

// MaxContentWidth is the width of the widest line when nothing wraps.
func MaxContentWidth(s string) int {
	w := 0
	for _, line := range Lines(s, math.MaxInt) {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// Lines breaks s into lines no wider than limit cells. Explicit newlines always
// break; runs of spaces collapse to one. A word wider than limit gets a line of
// its own and overflows rather than being split.
func Lines(s string, limit int) []string {
	if s == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var (
			line  strings.Builder
			width int
		)
		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)
			switch {
			case width == 0:
				line.WriteString(word)
				width = ww
			case width+1+ww <= limit:
				line.WriteByte(' ')
				line.WriteString(word)
				width += 1 + ww
			default:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
				width = ww
			}
		}
		lines = append(lines, line.String())
	}
	return lines
}
