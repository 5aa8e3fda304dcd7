// Package scene loads layout scenes from YAML and builds them into trees.
//
// A scene is a node hierarchy with styles and optional text, plus the space to
// lay it out in:
//
//	name: sidebar
//	available: {width: 80, height: max-content}
//	root:
//	  style: {direction: column, padding: [1, 2]}
//	  children:
//	    - id: title
//	      text: Hello
package scene

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxtree"
)

// Scene is a parsed scene file.
type Scene struct {
	Name      string    `yaml:"name"`
	Available Available `yaml:"available"`
	// Rounding defaults to true.
	Rounding *bool `yaml:"rounding,omitempty"`
	Root     Node  `yaml:"root"`

	// Path is the file the scene was read from, if any.
	Path string `yaml:"-"`
}

// Available is the space the root is laid out in.
type Available struct {
	Width  Space `yaml:"width"`
	Height Space `yaml:"height"`
}

// Size converts to the tree's available space.
func (a Available) Size() boxtree.Size[boxtree.AvailableSpace] {
	return boxtree.Space(a.Width.AvailableSpace, a.Height.AvailableSpace)
}

// Node is one node of the scene hierarchy. A node with text is a leaf whose
// size comes from the text; it may not have children.
type Node struct {
	ID       string `yaml:"id,omitempty"`
	Text     string `yaml:"text,omitempty"`
	NoWrap   bool   `yaml:"no_wrap,omitempty"`
	Style    Style  `yaml:"style,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// RoundingEnabled reports whether layouts are snapped to whole pixels.
func (s *Scene) RoundingEnabled() bool {
	return s.Rounding == nil || *s.Rounding
}

// Load reads and parses a scene file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse parses and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &s, nil
}

// Validate reports every problem with the scene at once.
func (s *Scene) Validate() error {
	var errs error
	if s.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("name is required"))
	}
	if !s.Available.Width.set || !s.Available.Height.set {
		errs = multierr.Append(errs, fmt.Errorf("available width and height are required"))
	}

	seen := make(map[string]string)
	walk(&s.Root, "root", func(n *Node, path string) {
		if n.ID != "" {
			if prev, dup := seen[n.ID]; dup {
				errs = multierr.Append(errs, fmt.Errorf("%s: id %q already used by %s", path, n.ID, prev))
			}
			seen[n.ID] = path
		}
		if n.Text != "" && len(n.Children) > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: a text node cannot have children", path))
		}
		if _, err := n.Style.Resolve(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	})
	return errs
}

// walk visits n and its descendants in pre-order. path names each node by its
// position, e.g. "root/0/2".
func walk(n *Node, path string, fn func(*Node, string)) {
	fn(n, path)
	for i := range n.Children {
		walk(&n.Children[i], childPath(path, i), fn)
	}
}
