package boxtree

// MarkDirty marks a node and every ancestor up to its root as needing layout.
// Use it when something outside the style, such as a leaf's text, changes its size.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.lookup("mark dirty", id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

// Dirty reports whether the node needs layout.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, err := t.lookup("dirty", id)
	if err != nil {
		return false, err
	}
	return n.dirty, nil
}

// markDirty walks the whole ancestor chain without stopping at nodes that are
// already dirty: a subtree can be computed from a root below a dirty ancestor,
// which leaves that ancestor dirty above clean nodes.
func (t *Tree) markDirty(id NodeID) {
	for cur := id; cur != NoNode; {
		n := t.mustGet(cur)
		n.dirty = true
		cur = n.parent
	}
}
