package scene

import (
	"fmt"

	"github.com/grindlemire/boxtree"
	"github.com/grindlemire/boxtree/pkg/textmeasure"
)

// Computed is a scene laid out in its own tree.
type Computed struct {
	Scene *Scene
	Tree  *boxtree.Tree
	Built *Built
}

// Compute builds the scene into a new tree and lays it out within space,
// measuring text leaves with textmeasure.
func (s *Scene) Compute(space boxtree.Size[boxtree.AvailableSpace], opts ...boxtree.Option) (*Computed, error) {
	if !s.RoundingEnabled() {
		opts = append(opts, boxtree.WithoutRounding())
	}
	t, err := boxtree.New(opts...)
	if err != nil {
		return nil, err
	}
	b, err := s.Build(t)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", s.Name, err)
	}
	if err := t.ComputeLayoutWithMeasure(b.Root, space, textmeasure.Measure); err != nil {
		return nil, fmt.Errorf("compute %s: %w", s.Name, err)
	}
	return &Computed{Scene: s, Tree: t, Built: b}, nil
}

// Result is the serializable form of a computed scene.
type Result struct {
	Scene string      `json:"scene" yaml:"scene"`
	Path  string      `json:"path,omitempty" yaml:"path,omitempty"`
	Root  *NodeResult `json:"root" yaml:"root"`
}

// NodeResult is one node's layout. X and Y are relative to the parent's
// content box.
type NodeResult struct {
	ID            string        `json:"id" yaml:"id"`
	X             float32       `json:"x" yaml:"x"`
	Y             float32       `json:"y" yaml:"y"`
	Width         float32       `json:"width" yaml:"width"`
	Height        float32       `json:"height" yaml:"height"`
	ContentWidth  float32       `json:"content_width" yaml:"content_width"`
	ContentHeight float32       `json:"content_height" yaml:"content_height"`
	Padding       EdgeList      `json:"padding" yaml:"padding"`
	Border        EdgeList      `json:"border" yaml:"border"`
	Children      []*NodeResult `json:"children,omitempty" yaml:"children,omitempty"`
}

// Result collects the computed layouts. With unrounded set it reports the
// fractional values the engine produced instead of the snapped ones.
func (c *Computed) Result(unrounded bool) (*Result, error) {
	root, err := c.node(c.Built.Root, unrounded)
	if err != nil {
		return nil, err
	}
	return &Result{Scene: c.Scene.Name, Path: c.Scene.Path, Root: root}, nil
}

func (c *Computed) node(id boxtree.NodeID, unrounded bool) (*NodeResult, error) {
	get := c.Tree.Layout
	if unrounded {
		get = c.Tree.UnroundedLayout
	}
	l, err := get(id)
	if err != nil {
		return nil, err
	}

	r := &NodeResult{
		ID:            c.Built.Names[id],
		X:             l.Location.X,
		Y:             l.Location.Y,
		Width:         l.Size.Width,
		Height:        l.Size.Height,
		ContentWidth:  l.ContentSize.Width,
		ContentHeight: l.ContentSize.Height,
		Padding:       EdgeList{l.Padding},
		Border:        EdgeList{l.Border},
	}

	children, err := c.Tree.Children(id)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		cr, err := c.node(child, unrounded)
		if err != nil {
			return nil, err
		}
		r.Children = append(r.Children, cr)
	}
	return r, nil
}
