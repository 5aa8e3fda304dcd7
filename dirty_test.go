package boxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirty(t *testing.T, tr *Tree, id NodeID) bool {
	t.Helper()
	d, err := tr.Dirty(id)
	require.NoError(t, err)
	return d
}

// chain builds root -> mid -> leaf, plus a sibling leaf under root, and lays it out.
func chain(t *testing.T) (tr *Tree, root, mid, leaf, sibling NodeID) {
	t.Helper()
	tr = newTree(t)
	leaf = tr.NewLeaf(fixed(10, 10))
	sibling = tr.NewLeaf(fixed(10, 10))
	mid = mustNode(t, tr, DefaultStyle(), leaf)
	root = mustNode(t, tr, column(), mid, sibling)
	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100)))
	return tr, root, mid, leaf, sibling
}

func TestDirty_NewNodes(t *testing.T) {
	tr := newTree(t)
	a := tr.NewLeaf(DefaultStyle())
	p := mustNode(t, tr, DefaultStyle(), a)

	assert.True(t, dirty(t, tr, a))
	assert.True(t, dirty(t, tr, p))

	require.NoError(t, tr.ComputeLayout(p, DefiniteSpace(10, 10)))
	assert.False(t, dirty(t, tr, a))
	assert.False(t, dirty(t, tr, p))
}

func TestDirty_Propagation(t *testing.T) {
	type tc struct {
		mutate    func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID)
		wantDirty []string
	}

	tests := map[string]tc{
		"set style on leaf": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				require.NoError(t, tr.SetStyle(leaf, fixed(20, 20)))
			},
			wantDirty: []string{"root", "mid", "leaf"},
		},
		"set unchanged style": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				require.NoError(t, tr.SetStyle(leaf, fixed(10, 10)))
			},
			wantDirty: []string{"root", "mid", "leaf"},
		},
		"mark dirty": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				require.NoError(t, tr.MarkDirty(sibling))
			},
			wantDirty: []string{"root", "sibling"},
		},
		"set context": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				require.NoError(t, tr.SetContext(leaf, "new text"))
			},
			wantDirty: nil,
		},
		"reads": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				_, _ = tr.Layout(leaf)
				_, _ = tr.Style(leaf)
				_, _ = tr.Children(root)
			},
			wantDirty: nil,
		},
		"add child": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				require.NoError(t, tr.AddChild(mid, tr.NewLeaf(DefaultStyle())))
			},
			wantDirty: []string{"root", "mid"},
		},
		"remove child": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				_, err := tr.RemoveChild(mid, leaf)
				require.NoError(t, err)
			},
			wantDirty: []string{"root", "mid"},
		},
		"move between parents": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				other := tr.NewLeaf(DefaultStyle())
				require.NoError(t, tr.AddChild(other, leaf))
			},
			wantDirty: []string{"root", "mid"},
		},
		"remove node": {
			mutate: func(t *testing.T, tr *Tree, root, mid, leaf, sibling NodeID) {
				_, err := tr.Remove(leaf)
				require.NoError(t, err)
			},
			wantDirty: []string{"root", "mid"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr, root, mid, leaf, sibling := chain(t)
			tt.mutate(t, tr, root, mid, leaf, sibling)

			got := map[string]bool{}
			for label, id := range map[string]NodeID{"root": root, "mid": mid, "leaf": leaf, "sibling": sibling} {
				if d, err := tr.Dirty(id); err == nil && d {
					got[label] = true
				}
			}
			want := map[string]bool{}
			for _, label := range tt.wantDirty {
				want[label] = true
			}
			assert.Equal(t, want, got)
		})
	}
}

// A subtree computed on its own leaves dirty ancestors above clean nodes. A
// later edit inside that subtree must still reach the top.
func TestDirty_WalksPastDirtyAncestors(t *testing.T) {
	tr, root, mid, leaf, _ := chain(t)

	require.NoError(t, tr.SetStyle(leaf, fixed(20, 20)))
	require.NoError(t, tr.ComputeLayout(mid, DefiniteSpace(100, 100)))
	assert.True(t, dirty(t, tr, root))
	assert.False(t, dirty(t, tr, mid))
	assert.False(t, dirty(t, tr, leaf))

	require.NoError(t, tr.SetStyle(leaf, fixed(30, 30)))
	assert.True(t, dirty(t, tr, mid))
	assert.True(t, dirty(t, tr, root))

	require.NoError(t, tr.ComputeLayout(root, DefiniteSpace(100, 100)))
	assert.Equal(t, Sz(30, 30), mustLayout(t, tr, leaf).Size)
	assert.False(t, dirty(t, tr, root))
}
