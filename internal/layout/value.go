package layout

import "fmt"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of the containing block's content size
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(px float32) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the pixel value against the containing size.
// Auto, and percentages of an unknown containing size, resolve to unknown.
func (v Value) Resolve(containing Dim) Dim {
	switch v.Unit {
	case UnitFixed:
		return Known(v.Amount)
	case UnitPercent:
		if containing.Known {
			return Known(containing.Px * v.Amount / 100)
		}
		return Unknown()
	default:
		return Unknown()
	}
}

// ResolveOr is Resolve with a fallback for the unknown case.
func (v Value) ResolveOr(containing Dim, fallback float32) float32 {
	return v.Resolve(containing).Or(fallback)
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return fmt.Sprintf("%gpx", v.Amount)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Amount)
	default:
		return "auto"
	}
}
