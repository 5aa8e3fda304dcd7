package boxtree

import (
	"fmt"
	"math"
)

// MeasureFunc reports the intrinsic content size of a leaf, for example the size of
// the text it holds. It is passed to ComputeLayoutWithMeasure and runs synchronously
// during that call, at most once per leaf that needs layout. It must not modify the tree.
//
// The returned size must be finite and non-negative; anything else, or a non-nil
// error, fails the computation with ErrMeasurementFailed.
type MeasureFunc func(in MeasureInput) (Size[float32], error)

// MeasureInput is what a MeasureFunc gets to work with.
type MeasureInput struct {
	// KnownDimensions are axes already fixed by the node's own style or by its parent.
	// They are border-box sizes: padding and border are still inside them.
	KnownDimensions Size[Dim]
	// AvailableSpace is the space the parent offers the node.
	AvailableSpace Size[AvailableSpace]
	Node           NodeID
	// Context is the value attached with NewLeafWithContext or SetContext, or nil.
	Context any
	Style   Style
}

// measureLeaf runs the measure function for a leaf, once per run.
func (r *run) measureLeaf(id NodeID, n *node, known Size[Dim], available Size[AvailableSpace]) (Size[float32], error) {
	if size, ok := r.measured[id]; ok {
		return size, nil
	}

	// Fill axes the caller left open from the node's own definite size.
	if !known.Width.Known {
		known.Width = n.style.Width.Resolve(available.Width.Dim())
	}
	if !known.Height.Known {
		known.Height = n.style.Height.Resolve(available.Height.Dim())
	}

	size, err := r.measure(MeasureInput{
		KnownDimensions: known,
		AvailableSpace:  available,
		Node:            id,
		Context:         n.context,
		Style:           n.style,
	})
	if err != nil {
		return Size[float32]{}, &TreeError{Op: "measure", Node: id, Err: ErrMeasurementFailed, Cause: err}
	}
	if !usable(size.Width) || !usable(size.Height) {
		return Size[float32]{}, &TreeError{
			Op:     "measure",
			Node:   id,
			Err:    ErrMeasurementFailed,
			Detail: fmt.Sprintf("unusable size %gx%g", size.Width, size.Height),
		}
	}

	r.measured[id] = size
	r.stats.measured++
	return size, nil
}

func usable(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
