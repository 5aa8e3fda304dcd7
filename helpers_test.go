package boxtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixed returns a default style with a definite border-box size.
func fixed(w, h float32) Style {
	s := DefaultStyle()
	s.Width = Fixed(w)
	s.Height = Fixed(h)
	return s
}

func grow(n float32) Style {
	s := DefaultStyle()
	s.FlexGrow = n
	return s
}

func column() Style {
	s := DefaultStyle()
	s.Direction = Column
	return s
}

func newTree(t *testing.T, opts ...Option) *Tree {
	t.Helper()
	tr, err := New(opts...)
	require.NoError(t, err)
	return tr
}

func mustLayout(t *testing.T, tr *Tree, id NodeID) Layout {
	t.Helper()
	l, err := tr.Layout(id)
	require.NoError(t, err)
	return l
}

func mustNode(t *testing.T, tr *Tree, style Style, children ...NodeID) NodeID {
	t.Helper()
	id, err := tr.NewWithChildren(style, children...)
	require.NoError(t, err)
	return id
}

// countingEngine records how often each node reaches the engine.
type countingEngine struct {
	inner Engine
	calls map[NodeID]int
	fail  map[NodeID]error
}

func newCountingEngine(inner Engine) *countingEngine {
	return &countingEngine{inner: inner, calls: make(map[NodeID]int), fail: make(map[NodeID]error)}
}

func (e *countingEngine) ChildSpace(style Style, known Size[Dim], available Size[AvailableSpace]) Size[AvailableSpace] {
	return e.inner.ChildSpace(style, known, available)
}

func (e *countingEngine) ComputeBox(in BoxInput) (BoxOutput, error) {
	e.calls[in.Node]++
	if err := e.fail[in.Node]; err != nil {
		return BoxOutput{}, err
	}
	return e.inner.ComputeBox(in)
}

func (e *countingEngine) reset() {
	clear(e.calls)
}
