package layout

// Size represents a width/height pair.
type Size[T any] struct {
	Width  T
	Height T
}

// Sz builds a float Size.
func Sz(width, height float32) Size[float32] {
	return Size[float32]{Width: width, Height: height}
}

// Space builds an available-space Size.
func Space(width, height AvailableSpace) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: width, Height: height}
}

// DefiniteSpace builds an available-space Size with both axes definite.
func DefiniteSpace(width, height float32) Size[AvailableSpace] {
	return Space(Definite(width), Definite(height))
}

// UnknownSize returns known dimensions with neither axis fixed.
func UnknownSize() Size[Dim] {
	return Size[Dim]{}
}

// KnownSize returns known dimensions with both axes fixed.
func KnownSize(width, height float32) Size[Dim] {
	return Size[Dim]{Width: Known(width), Height: Known(height)}
}
