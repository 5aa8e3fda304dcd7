package layout

import "fmt"

// Dim is a length along one axis that is either a known pixel value or unknown.
// Known dimensions are sizes already fixed by an ancestor or sibling constraint.
type Dim struct {
	Px    float32
	Known bool
}

// Known returns a Dim fixed at px.
func Known(px float32) Dim {
	return Dim{Px: px, Known: true}
}

// Unknown returns a Dim with no value.
func Unknown() Dim {
	return Dim{}
}

// Or returns the value if known, fallback otherwise.
func (d Dim) Or(fallback float32) float32 {
	if d.Known {
		return d.Px
	}
	return fallback
}

// Sub subtracts n from a known value; unknown stays unknown.
func (d Dim) Sub(n float32) Dim {
	if !d.Known {
		return d
	}
	return Known(max(0, d.Px-n))
}

func (d Dim) String() string {
	if !d.Known {
		return "unknown"
	}
	return fmt.Sprintf("%g", d.Px)
}

// SpaceKind selects the kind of constraint an AvailableSpace expresses.
type SpaceKind uint8

const (
	SpaceDefinite   SpaceKind = iota // A fixed number of pixels
	SpaceMinContent                  // Size to the smallest the content allows
	SpaceMaxContent                  // Size to the content's natural size
)

// AvailableSpace is the constraint a layout is computed under along one axis.
type AvailableSpace struct {
	Kind SpaceKind
	Px   float32 // Only meaningful for SpaceDefinite
}

// Definite returns available space of exactly px pixels.
func Definite(px float32) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Px: px}
}

// MinContent returns a min-content constraint.
func MinContent() AvailableSpace {
	return AvailableSpace{Kind: SpaceMinContent}
}

// MaxContent returns a max-content constraint.
func MaxContent() AvailableSpace {
	return AvailableSpace{Kind: SpaceMaxContent}
}

// IsDefinite reports whether the space is a pixel value.
func (a AvailableSpace) IsDefinite() bool {
	return a.Kind == SpaceDefinite
}

// Dim converts the space into a known dimension when definite.
func (a AvailableSpace) Dim() Dim {
	if a.Kind == SpaceDefinite {
		return Known(a.Px)
	}
	return Unknown()
}

// Sub shrinks a definite space by n, never below zero.
func (a AvailableSpace) Sub(n float32) AvailableSpace {
	if a.Kind != SpaceDefinite {
		return a
	}
	return Definite(max(0, a.Px-n))
}

func (a AvailableSpace) String() string {
	switch a.Kind {
	case SpaceMinContent:
		return "min-content"
	case SpaceMaxContent:
		return "max-content"
	default:
		return fmt.Sprintf("%g", a.Px)
	}
}
