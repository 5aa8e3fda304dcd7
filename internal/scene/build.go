package scene

import (
	"strconv"

	"github.com/grindlemire/boxtree"
	"github.com/grindlemire/boxtree/pkg/textmeasure"
)

// Built maps a scene onto the tree it was built into.
type Built struct {
	Root boxtree.NodeID
	// Names holds each node's scene id, or its position ("root/0/1") when it has none.
	Names map[boxtree.NodeID]string
	// IDs is the reverse of Names.
	IDs map[string]boxtree.NodeID
}

// Build creates the scene's nodes in t. Text nodes become leaves whose context
// is a textmeasure.Text, so textmeasure.Measure sizes them.
func (s *Scene) Build(t *boxtree.Tree) (*Built, error) {
	b := &Built{
		Names: make(map[boxtree.NodeID]string),
		IDs:   make(map[string]boxtree.NodeID),
	}
	root, err := b.build(t, &s.Root, "root")
	if err != nil {
		return nil, err
	}
	b.Root = root
	return b, nil
}

func (b *Built) build(t *boxtree.Tree, n *Node, path string) (boxtree.NodeID, error) {
	style, err := n.Style.Resolve()
	if err != nil {
		return boxtree.NoNode, err
	}

	var id boxtree.NodeID
	switch {
	case n.Text != "":
		id = t.NewLeafWithContext(style, textmeasure.Text{Content: n.Text, NoWrap: n.NoWrap})
	case len(n.Children) == 0:
		id = t.NewLeaf(style)
	default:
		children := make([]boxtree.NodeID, len(n.Children))
		for i := range n.Children {
			c, err := b.build(t, &n.Children[i], childPath(path, i))
			if err != nil {
				return boxtree.NoNode, err
			}
			children[i] = c
		}
		if id, err = t.NewWithChildren(style, children...); err != nil {
			return boxtree.NoNode, err
		}
	}

	name := n.ID
	if name == "" {
		name = path
	}
	b.Names[id] = name
	b.IDs[name] = id
	return id, nil
}

func childPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}
