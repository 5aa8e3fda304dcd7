package boxtree

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	tr := newTree(t)

	a := tr.NewLeaf(fixed(100, 50))
	bStyle := fixed(50, 50)
	bStyle.Border = EdgeAll(1)
	b := tr.NewLeaf(bStyle)
	hidden := DefaultStyle()
	hidden.Display = DisplayNone
	h := tr.NewLeaf(hidden)
	pStyle := DefaultStyle()
	pStyle.Padding = EdgeAll(1)
	p := mustNode(t, tr, pStyle, a, b, h)

	require.NoError(t, tr.ComputeLayout(p, DefiniteSpace(200, 200)))
	require.NoError(t, tr.AddChild(p, tr.NewLeaf(DefaultStyle())))

	var buf bytes.Buffer
	require.NoError(t, tr.Print(&buf, p))

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "print", buf.Bytes())
}

func TestPrint_InvalidRoot(t *testing.T) {
	tr := newTree(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, tr.Print(&buf, NodeID(5)), ErrNotFound)
	assert.Empty(t, buf.String())
}
