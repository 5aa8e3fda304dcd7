package boxtree

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/boxtree/internal/layout"
)

// ComputeLayout lays out the subtree rooted at root within space.
// Content-less leaves are zero-sized; use ComputeLayoutWithMeasure to size them.
func (t *Tree) ComputeLayout(root NodeID, space Size[AvailableSpace]) error {
	return t.compute(root, space, nil)
}

// ComputeLayoutWithMeasure is ComputeLayout with a measure function for leaves.
// The function is used for this call only and is not kept by the tree.
//
// Cached results do not record which measure function produced them. Clean
// leaves laid out under the same space keep their earlier sizes, so MarkDirty
// the leaves before switching to a different function or between ComputeLayout
// and ComputeLayoutWithMeasure.
func (t *Tree) ComputeLayoutWithMeasure(root NodeID, space Size[AvailableSpace], measure MeasureFunc) error {
	return t.compute(root, space, measure)
}

// Layout returns the node's last computed layout, rounded to whole pixels unless
// rounding is disabled.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, err := t.lookup("layout", id)
	if err != nil {
		return Layout{}, err
	}
	if !n.computed {
		return Layout{}, &TreeError{Op: "layout", Node: id, Err: ErrNotComputed}
	}
	return n.rounded, nil
}

// UnroundedLayout returns the node's last computed layout before rounding.
func (t *Tree) UnroundedLayout(id NodeID) (Layout, error) {
	n, err := t.lookup("unrounded layout", id)
	if err != nil {
		return Layout{}, err
	}
	if !n.computed {
		return Layout{}, &TreeError{Op: "unrounded layout", Node: id, Err: ErrNotComputed}
	}
	return n.unrounded, nil
}

func (t *Tree) compute(root NodeID, space Size[AvailableSpace], measure MeasureFunc) error {
	n, err := t.lookup("compute layout", root)
	if err != nil {
		return err
	}

	start := time.Now()
	r := &run{
		t:        t,
		measure:  measure,
		staged:   make(map[NodeID]*staged),
		measured: make(map[NodeID]Size[float32]),
	}

	l, err := r.layoutNode(root, layout.UnknownSize(), space)
	if err != nil {
		t.log.Debug("layout failed", zap.Stringer("root", root), zap.Error(err))
		return err
	}

	// A subtree root that has a parent keeps the location that parent gave it.
	if n.parent != NoNode && n.computed {
		l.Location = n.unrounded.Location
		l.Order = n.unrounded.Order
	}
	r.place(root, l)

	r.commit()
	t.round(root)

	t.log.Debug("layout computed",
		zap.Stringer("root", root),
		zap.Int("engine_calls", r.stats.engineCalls),
		zap.Int("cache_hits", r.stats.cacheHits),
		zap.Int("measured", r.stats.measured),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// staged holds the writes of a run for one node until the run succeeds.
type staged struct {
	cache     layoutCache
	layout    Layout
	hasLayout bool
}

type runStats struct {
	engineCalls int
	cacheHits   int
	measured    int
}

// run is the state of a single computation. Nothing it learns reaches the
// tree until commit, so a failed run leaves every node as it was.
type run struct {
	t        *Tree
	measure  MeasureFunc
	staged   map[NodeID]*staged
	measured map[NodeID]Size[float32]
	stats    runStats
}

// cacheFor returns the cache that may be trusted for id: results staged in this
// run, else the node's stored results if the node is clean, else nil.
func (r *run) cacheFor(id NodeID, n *node) *layoutCache {
	if s, ok := r.staged[id]; ok {
		return &s.cache
	}
	if !n.dirty {
		return &n.cache
	}
	return nil
}

// stage returns the staging record for id, creating it on first write. A dirty
// node starts from an empty cache; a clean one keeps its still-valid entries.
func (r *run) stage(id NodeID, n *node) *staged {
	if s, ok := r.staged[id]; ok {
		return s
	}
	s := &staged{}
	if !n.dirty {
		s.cache = n.cache
	}
	r.staged[id] = s
	return s
}

// place records the final layout of id, including where its parent put it.
func (r *run) place(id NodeID, l Layout) {
	s := r.stage(id, r.t.mustGet(id))
	s.layout = l
	s.hasLayout = true
}

// sizeNode returns the border-box size of id without laying out its subtree.
func (r *run) sizeNode(id NodeID, known Size[Dim], available Size[AvailableSpace]) (Size[float32], error) {
	n := r.t.mustGet(id)
	key := cacheKey{known: known, available: available}
	if c := r.cacheFor(id, n); c != nil {
		if size, ok := c.size(key); ok {
			r.stats.cacheHits++
			return size, nil
		}
	}

	out, _, err := r.computeBox(id, n, known, available)
	if err != nil {
		return Size[float32]{}, err
	}
	r.stage(id, n).cache.storeSize(key, out.Size)
	return out.Size, nil
}

// layoutNode computes the full layout of id and every descendant. The returned
// layout has no location; the caller places it.
func (r *run) layoutNode(id NodeID, known Size[Dim], available Size[AvailableSpace]) (Layout, error) {
	n := r.t.mustGet(id)
	key := cacheKey{known: known, available: available}
	if c := r.cacheFor(id, n); c != nil {
		if l, ok := c.layout(key); ok {
			r.stats.cacheHits++
			return l, nil
		}
	}

	out, childSpace, err := r.computeBox(id, n, known, available)
	if err != nil {
		return Layout{}, err
	}

	for i, child := range n.children {
		p := out.Children[i]
		cl, err := r.layoutNode(child, layout.KnownSize(p.Size.Width, p.Size.Height), childSpace)
		if err != nil {
			return Layout{}, err
		}
		cl.Location = p.Location
		cl.Order = p.Order
		r.place(child, cl)
	}

	l := Layout{
		Size:          out.Size,
		ContentSize:   out.ContentSize,
		ScrollbarSize: out.ScrollbarSize,
		Border:        out.Border,
		Padding:       out.Padding,
		Margin:        out.Margin,
	}
	r.stage(id, n).cache.storeLayout(key, l)
	return l, nil
}

// computeBox sizes the children of id and runs the engine on it. It returns the
// engine output and the space the children were sized under.
func (r *run) computeBox(id NodeID, n *node, known Size[Dim], available Size[AvailableSpace]) (BoxOutput, Size[AvailableSpace], error) {
	engine := r.t.engine
	childSpace := engine.ChildSpace(n.style, known, available)

	in := BoxInput{
		Node:            id,
		Style:           n.style,
		KnownDimensions: known,
		AvailableSpace:  available,
		Children:        make([]ChildBox, len(n.children)),
	}
	for i, child := range n.children {
		size, err := r.sizeNode(child, layout.UnknownSize(), childSpace)
		if err != nil {
			return BoxOutput{}, childSpace, err
		}
		in.Children[i] = ChildBox{Node: child, Style: r.t.mustGet(child).style, Size: size}
	}

	if len(n.children) == 0 && r.measure != nil {
		size, err := r.measureLeaf(id, n, known, available)
		if err != nil {
			return BoxOutput{}, childSpace, err
		}
		in.Measured = &size
	}

	r.stats.engineCalls++
	out, err := engine.ComputeBox(in)
	if err != nil {
		return BoxOutput{}, childSpace, &TreeError{Op: "compute", Node: id, Err: err}
	}
	if len(out.Children) != len(n.children) {
		return BoxOutput{}, childSpace, &TreeError{
			Op:   "compute",
			Node: id,
			Err:  fmt.Errorf("engine placed %d children, node has %d", len(out.Children), len(n.children)),
		}
	}
	return out, childSpace, nil
}

// commit writes every staged result into the tree. Nodes that received a final
// layout are clean afterwards.
func (r *run) commit() {
	for id, s := range r.staged {
		n := r.t.mustGet(id)
		n.cache = s.cache
		if s.hasLayout {
			n.unrounded = s.layout
			n.computed = true
			n.dirty = false
		}
	}
}
