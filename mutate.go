package boxtree

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// AddChild appends child to parent's children.
// A child attached to another parent is moved.
func (t *Tree) AddChild(parent, child NodeID) error {
	const op = "add child"
	p, err := t.lookup(op, parent)
	if err != nil {
		return err
	}
	if err := t.validateAttach(op, parent, child); err != nil {
		return err
	}

	t.detach(child)
	p.children = append(p.children, child)
	t.mustGet(child).parent = parent
	t.markDirty(parent)
	t.log.Debug("child added", zap.Stringer("parent", parent), zap.Stringer("child", child))
	return nil
}

// InsertChildAt inserts child at index, shifting later children right.
// Index may equal the child count, which appends.
func (t *Tree) InsertChildAt(parent NodeID, index int, child NodeID) error {
	const op = "insert child"
	p, err := t.lookup(op, parent)
	if err != nil {
		return err
	}
	if index < 0 || index > len(p.children) {
		return outOfBounds(op, parent, index, len(p.children))
	}
	if err := t.validateAttach(op, parent, child); err != nil {
		return err
	}

	t.detach(child)
	p.children = slices.Insert(p.children, index, child)
	t.mustGet(child).parent = parent
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent and returns it. The child stays in the
// tree as a root.
func (t *Tree) RemoveChild(parent, child NodeID) (NodeID, error) {
	const op = "remove child"
	p, err := t.lookup(op, parent)
	if err != nil {
		return NoNode, err
	}
	if _, err := t.lookup(op, child); err != nil {
		return NoNode, err
	}
	index := slices.Index(p.children, child)
	if index < 0 {
		return NoNode, &TreeError{Op: op, Node: child, Err: ErrNotFound, Detail: "not a child of " + parent.String()}
	}
	return t.removeChildAt(parent, p, index), nil
}

// RemoveChildAt detaches the child at index and returns it.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	const op = "remove child at"
	p, err := t.lookup(op, parent)
	if err != nil {
		return NoNode, err
	}
	if index < 0 || index >= len(p.children) {
		return NoNode, outOfBounds(op, parent, index, len(p.children))
	}
	return t.removeChildAt(parent, p, index), nil
}

// RemoveChildrenRange detaches the children in [start, end).
func (t *Tree) RemoveChildrenRange(parent NodeID, start, end int) error {
	const op = "remove children range"
	p, err := t.lookup(op, parent)
	if err != nil {
		return err
	}
	if start < 0 || start > len(p.children) {
		return outOfBounds(op, parent, start, len(p.children))
	}
	if end < start || end > len(p.children) {
		return outOfBounds(op, parent, end, len(p.children))
	}
	if start == end {
		return nil
	}

	for _, child := range p.children[start:end] {
		t.mustGet(child).parent = NoNode
	}
	p.children = slices.Delete(p.children, start, end)
	t.markDirty(parent)
	return nil
}

// ReplaceChildAt puts child at index and returns the child it replaced, which
// stays in the tree as a root.
func (t *Tree) ReplaceChildAt(parent NodeID, index int, child NodeID) (NodeID, error) {
	const op = "replace child"
	p, err := t.lookup(op, parent)
	if err != nil {
		return NoNode, err
	}
	if index < 0 || index >= len(p.children) {
		return NoNode, outOfBounds(op, parent, index, len(p.children))
	}
	old := p.children[index]
	if old == child {
		if _, err := t.lookup(op, child); err != nil {
			return NoNode, err
		}
		return old, nil
	}
	if err := t.validateAttach(op, parent, child); err != nil {
		return NoNode, err
	}

	t.detach(child)
	t.mustGet(old).parent = NoNode
	p.children[index] = child
	t.mustGet(child).parent = parent
	t.markDirty(parent)
	return old, nil
}

// SetChildren replaces parent's children with children, in order. Previous
// children that are not in the new list stay in the tree as roots.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) error {
	const op = "set children"
	p, err := t.lookup(op, parent)
	if err != nil {
		return err
	}
	if err := t.validateChildren(op, parent, children); err != nil {
		return err
	}

	for _, old := range p.children {
		t.mustGet(old).parent = NoNode
	}
	p.children = p.children[:0]
	for _, child := range children {
		t.detach(child)
		t.mustGet(child).parent = parent
	}
	p.children = append(p.children, children...)
	t.markDirty(parent)
	return nil
}

func (t *Tree) removeChildAt(parent NodeID, p *node, index int) NodeID {
	child := p.children[index]
	p.children = slices.Delete(p.children, index, index+1)
	t.mustGet(child).parent = NoNode
	t.markDirty(parent)
	return child
}

// detach removes child from its current parent, if any, and marks that parent dirty.
func (t *Tree) detach(child NodeID) {
	c := t.mustGet(child)
	if c.parent == NoNode {
		return
	}
	p := t.mustGet(c.parent)
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	t.markDirty(c.parent)
	c.parent = NoNode
}

// validateAttach checks that child exists, is not already a child of parent,
// and is not parent itself or one of its ancestors.
func (t *Tree) validateAttach(op string, parent, child NodeID) error {
	c, err := t.lookup(op, child)
	if err != nil {
		return err
	}
	if c.parent == parent {
		return invalidHierarchy(op, child, "already a child of "+parent.String())
	}
	if t.isAncestorOrSelf(child, parent) {
		return invalidHierarchy(op, child, "would become its own ancestor")
	}
	return nil
}

// validateChildren checks a whole replacement child list. parent may be NoNode
// for a node that does not exist yet.
func (t *Tree) validateChildren(op string, parent NodeID, children []NodeID) error {
	seen := make(map[NodeID]struct{}, len(children))
	for _, child := range children {
		if _, err := t.lookup(op, child); err != nil {
			return err
		}
		if _, dup := seen[child]; dup {
			return invalidHierarchy(op, child, "listed more than once")
		}
		seen[child] = struct{}{}
		if parent != NoNode && t.isAncestorOrSelf(child, parent) {
			return invalidHierarchy(op, child, fmt.Sprintf("would become an ancestor of itself under %s", parent))
		}
	}
	return nil
}

// isAncestorOrSelf reports whether candidate is id or one of id's ancestors.
func (t *Tree) isAncestorOrSelf(candidate, id NodeID) bool {
	for cur := id; cur != NoNode; cur = t.mustGet(cur).parent {
		if cur == candidate {
			return true
		}
	}
	return false
}
