package boxtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCheck(t *testing.T) {
	type tc struct {
		corrupt      func(tr *Tree, root, a, b NodeID)
		want         func(root, a, b NodeID) []string
		wantContains string
	}

	tests := map[string]tc{
		"consistent": {
			corrupt: func(*Tree, NodeID, NodeID, NodeID) {},
		},
		"child forgets its parent": {
			corrupt: func(tr *Tree, root, a, b NodeID) {
				tr.get(a).parent = NoNode
			},
			want: func(root, a, b NodeID) []string {
				return []string{root.String() + ": child " + a.String() + " points at parent node(none)"}
			},
		},
		"parent forgets its child": {
			corrupt: func(tr *Tree, root, a, b NodeID) {
				tr.get(root).children = []NodeID{b}
			},
			want: func(root, a, b NodeID) []string {
				return []string{a.String() + ": parent " + root.String() + " does not list it"}
			},
		},
		"duplicate child": {
			corrupt: func(tr *Tree, root, a, b NodeID) {
				r := tr.get(root)
				r.children = append(r.children, a)
			},
			want: func(root, a, b NodeID) []string {
				return []string{root.String() + ": child " + a.String() + " listed more than once"}
			},
		},
		"cycle": {
			corrupt: func(tr *Tree, root, a, b NodeID) {
				tr.get(root).parent = a
				tr.get(a).children = []NodeID{root}
			},
			wantContains: "is its own ancestor",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTree(t)
			a := tr.NewLeaf(DefaultStyle())
			b := tr.NewLeaf(DefaultStyle())
			root := mustNode(t, tr, DefaultStyle(), a, b)

			tt.corrupt(tr, root, a, b)
			err := tr.Check()

			switch {
			case tt.wantContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantContains)
			case tt.want == nil:
				require.NoError(t, err)
			default:
				var got []string
				for _, e := range multierr.Errors(err) {
					got = append(got, e.Error())
				}
				assert.Equal(t, tt.want(root, a, b), got)
			}
		})
	}
}
