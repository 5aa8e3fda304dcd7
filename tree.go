package boxtree

import (
	"go.uber.org/zap"

	"github.com/grindlemire/boxtree/internal/arena"
	"github.com/grindlemire/boxtree/internal/debug"
	"github.com/grindlemire/boxtree/internal/flex"
)

// node is one slot of the arena.
type node struct {
	style    Style
	parent   NodeID // NoNode for roots
	children []NodeID
	context  any

	// dirty means the cache may be stale and must not be trusted.
	dirty bool
	cache layoutCache

	// computed is set once a layout has been stored.
	computed  bool
	unrounded Layout
	rounded   Layout
}

// Tree is a layout tree. The zero value is not usable; call New.
type Tree struct {
	nodes    *arena.Arena[node]
	engine   Engine
	rounding bool
	capacity int
	log      *zap.Logger
}

// New creates an empty tree.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{
		engine:   flex.New(),
		rounding: true,
		log:      debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.nodes = arena.New[node](t.capacity)
	return t, nil
}

// EnableRounding makes Layout return whole-pixel values. This is the default.
func (t *Tree) EnableRounding() {
	t.rounding = true
}

// DisableRounding makes Layout return the same fractional values as UnroundedLayout.
// It takes effect on the next ComputeLayout.
func (t *Tree) DisableRounding() {
	t.rounding = false
}

// Rounding reports whether rounding is enabled.
func (t *Tree) Rounding() bool {
	return t.rounding
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// lookup resolves id or returns ErrNotFound attributed to op.
func (t *Tree) lookup(op string, id NodeID) (*node, error) {
	if n := t.get(id); n != nil {
		return n, nil
	}
	return nil, notFound(op, id)
}

// get resolves id, returning nil when it is stale or unknown.
func (t *Tree) get(id NodeID) *node {
	aid, ok := arena.Unpack(uint64(id))
	if !ok {
		return nil
	}
	return t.nodes.Get(aid)
}

// mustGet resolves an id the tree itself recorded. Those are live by invariant.
func (t *Tree) mustGet(id NodeID) *node {
	n := t.get(id)
	if n == nil {
		panic("boxtree: dangling node reference " + id.String())
	}
	return n
}

func (t *Tree) insert(n node) NodeID {
	return NodeID(t.nodes.Insert(n).Pack())
}

// NewLeaf creates a node with no children.
func (t *Tree) NewLeaf(style Style) NodeID {
	return t.insert(node{style: style, dirty: true})
}

// NewLeafWithContext creates a leaf carrying an opaque context value.
// The context is handed to the measure function when the leaf is measured.
func (t *Tree) NewLeafWithContext(style Style, context any) NodeID {
	return t.insert(node{style: style, context: context, dirty: true})
}

// NewWithChildren creates a node and attaches children to it in order.
// Children attached elsewhere are moved. Duplicates fail with ErrInvalidHierarchy.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	const op = "new with children"
	if err := t.validateChildren(op, NoNode, children); err != nil {
		return NoNode, err
	}

	id := t.insert(node{style: style, dirty: true})
	n := t.mustGet(id)
	n.children = make([]NodeID, 0, len(children))
	for _, child := range children {
		t.detach(child)
		t.mustGet(child).parent = id
		n.children = append(n.children, child)
	}
	t.log.Debug("node created", zap.Stringer("node", id), zap.Int("children", len(children)))
	return id, nil
}

// Remove deletes a node and returns its id. The node is detached from its parent;
// its children stay in the tree as parentless roots and must be removed separately.
func (t *Tree) Remove(id NodeID) (NodeID, error) {
	n, err := t.lookup("remove", id)
	if err != nil {
		return NoNode, err
	}

	t.detach(id)
	for _, child := range n.children {
		t.mustGet(child).parent = NoNode
	}

	aid, _ := arena.Unpack(uint64(id))
	t.nodes.Remove(aid)
	t.log.Debug("node removed", zap.Stringer("node", id))
	return id, nil
}

// Clear removes every node. All previously issued ids become invalid.
func (t *Tree) Clear() {
	t.nodes.Clear()
}

// Style returns a copy of the node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.lookup("style", id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// SetStyle replaces the node's style and marks it dirty, even when the style is unchanged.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.lookup("set style", id)
	if err != nil {
		return err
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// Context returns the node's context value, or nil if none is set.
func (t *Tree) Context(id NodeID) (any, error) {
	n, err := t.lookup("context", id)
	if err != nil {
		return nil, err
	}
	return n.context, nil
}

// SetContext attaches an opaque value to the node. It does not mark the node dirty:
// call MarkDirty when the new context changes the node's measured size.
func (t *Tree) SetContext(id NodeID, context any) error {
	n, err := t.lookup("set context", id)
	if err != nil {
		return err
	}
	n.context = context
	return nil
}

// Contexts returns the context of each node, in order.
// It fails without a partial result if any id is invalid.
func (t *Tree) Contexts(ids ...NodeID) ([]any, error) {
	out := make([]any, len(ids))
	for i, id := range ids {
		n, err := t.lookup("contexts", id)
		if err != nil {
			return nil, err
		}
		out[i] = n.context
	}
	return out, nil
}

// Children returns a copy of the node's children in layout order.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.lookup("children", id)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out, nil
}

// ChildCount returns the number of children of a node.
func (t *Tree) ChildCount(id NodeID) (int, error) {
	n, err := t.lookup("child count", id)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// ChildAt returns the child at index.
func (t *Tree) ChildAt(id NodeID, index int) (NodeID, error) {
	const op = "child at"
	n, err := t.lookup(op, id)
	if err != nil {
		return NoNode, err
	}
	if index < 0 || index >= len(n.children) {
		return NoNode, outOfBounds(op, id, index, len(n.children))
	}
	return n.children[index], nil
}

// Parent returns the node's parent, or NoNode for a root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	n, err := t.lookup("parent", id)
	if err != nil {
		return NoNode, err
	}
	return n.parent, nil
}
