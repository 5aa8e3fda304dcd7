package scene

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxtree"
)

// Space is an available-space axis: a number, "min-content" or "max-content".
type Space struct {
	boxtree.AvailableSpace
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Space) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: available space must be a scalar", value.Line)
	}
	switch v := strings.TrimSpace(value.Value); v {
	case "min-content":
		s.AvailableSpace = boxtree.MinContent()
	case "max-content":
		s.AvailableSpace = boxtree.MaxContent()
	default:
		px, err := strconv.ParseFloat(v, 32)
		if err != nil || px < 0 {
			return fmt.Errorf("line %d: invalid available space %q", value.Line, v)
		}
		s.AvailableSpace = boxtree.Definite(float32(px))
	}
	s.set = true
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Space) MarshalYAML() (any, error) {
	if s.IsDefinite() {
		return s.Px, nil
	}
	return s.String(), nil
}

// Length is a style size: a number of pixels, a percentage like "50%", or "auto".
type Length struct {
	boxtree.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: size must be a scalar", value.Line)
	}
	v, err := parseValue(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	l.Value = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Length) MarshalYAML() (any, error) {
	if l.Unit == boxtree.UnitFixed {
		return l.Amount, nil
	}
	return l.String(), nil
}

func parseValue(s string) (boxtree.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return boxtree.Auto(), nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
		if err != nil {
			return boxtree.Value{}, fmt.Errorf("invalid percentage %q", s)
		}
		return boxtree.Percent(float32(p)), nil
	default:
		px, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32)
		if err != nil {
			return boxtree.Value{}, fmt.Errorf("invalid size %q", s)
		}
		return boxtree.Fixed(float32(px)), nil
	}
}

// EdgeList is a padding, border or margin shorthand. Like CSS it takes one
// value for all sides, two for vertical and horizontal, three for top,
// horizontal and bottom, or four in top, right, bottom, left order.
type EdgeList struct {
	boxtree.Edges
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EdgeList) UnmarshalYAML(value *yaml.Node) error {
	var vals []float32
	switch value.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: invalid edge value %q", value.Line, value.Value)
		}
		vals = []float32{v}
	case yaml.SequenceNode:
		if err := value.Decode(&vals); err != nil {
			return fmt.Errorf("line %d: invalid edge list: %w", value.Line, err)
		}
	default:
		return fmt.Errorf("line %d: edges must be a number or a list", value.Line)
	}

	switch len(vals) {
	case 1:
		e.Edges = boxtree.EdgeAll(vals[0])
	case 2:
		e.Edges = boxtree.EdgeSymmetric(vals[0], vals[1])
	case 3:
		e.Edges = boxtree.EdgeTRBL(vals[0], vals[1], vals[2], vals[1])
	case 4:
		e.Edges = boxtree.EdgeTRBL(vals[0], vals[1], vals[2], vals[3])
	default:
		return fmt.Errorf("line %d: edges take 1 to 4 values, got %d", value.Line, len(vals))
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e EdgeList) MarshalYAML() (any, error) {
	return []float32{e.Top, e.Right, e.Bottom, e.Left}, nil
}

// MarshalJSON writes the edges as [top, right, bottom, left].
func (e EdgeList) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{e.Top, e.Right, e.Bottom, e.Left})
}
