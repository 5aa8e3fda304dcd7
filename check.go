package boxtree

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/grindlemire/boxtree/internal/arena"
)

// Check verifies the structural invariants of the whole tree and reports every
// violation it finds: each child points back at the one parent that lists it,
// children are live and unique, and no node is its own ancestor.
//
// A tree only ever modified through its methods always passes; Check exists for
// tests and for engines or tools that want to assert it.
func (t *Tree) Check() error {
	var errs error
	t.nodes.All(func(aid arena.ID, n *node) bool {
		id := NodeID(aid.Pack())
		errs = multierr.Append(errs, t.checkNode(id, n))
		return true
	})
	return errs
}

func (t *Tree) checkNode(id NodeID, n *node) error {
	var errs error

	if n.parent != NoNode {
		p := t.get(n.parent)
		switch {
		case p == nil:
			errs = multierr.Append(errs, fmt.Errorf("%s: parent %s is not live", id, n.parent))
		case slices.Index(p.children, id) < 0:
			errs = multierr.Append(errs, fmt.Errorf("%s: parent %s does not list it", id, n.parent))
		}
	}

	seen := make(map[NodeID]struct{}, len(n.children))
	for _, child := range n.children {
		if _, dup := seen[child]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%s: child %s listed more than once", id, child))
			continue
		}
		seen[child] = struct{}{}

		c := t.get(child)
		if c == nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: child %s is not live", id, child))
			continue
		}
		if c.parent != id {
			errs = multierr.Append(errs, fmt.Errorf("%s: child %s points at parent %s", id, child, c.parent))
		}
	}

	// Walking more steps than there are nodes means the parent chain loops.
	steps := 0
	for cur := n.parent; cur != NoNode; steps++ {
		if cur == id || steps > t.nodes.Len() {
			errs = multierr.Append(errs, fmt.Errorf("%s: is its own ancestor", id))
			break
		}
		p := t.get(cur)
		if p == nil {
			break
		}
		cur = p.parent
	}
	return errs
}
