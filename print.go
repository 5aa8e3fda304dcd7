package boxtree

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented dump of the subtree rooted at root, one line per node
// with its rounded layout. Nodes that need layout are flagged "dirty".
func (t *Tree) Print(w io.Writer, root NodeID) error {
	if _, err := t.lookup("print", root); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "TREE\n"); err != nil {
		return err
	}
	return t.printNode(w, root, false, "")
}

func (t *Tree) printNode(w io.Writer, id NodeID, hasSibling bool, lines string) error {
	n := t.mustGet(id)

	fork := "└── "
	bar := "    "
	if hasSibling {
		fork = "├── "
		bar = "│   "
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s ", lines, fork, label(n))
	if n.computed {
		l := n.rounded
		fmt.Fprintf(&b, "[x: %-4g y: %-4g w: %-4g h: %-4g content_w: %-4g content_h: %-4g border: l:%g r:%g t:%g b:%g, padding: l:%g r:%g t:%g b:%g]",
			l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height,
			l.ContentSize.Width, l.ContentSize.Height,
			l.Border.Left, l.Border.Right, l.Border.Top, l.Border.Bottom,
			l.Padding.Left, l.Padding.Right, l.Padding.Top, l.Padding.Bottom)
	} else {
		b.WriteString("[not computed]")
	}
	fmt.Fprintf(&b, " (%s)", id)
	if n.dirty {
		b.WriteString(" dirty")
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for i, child := range n.children {
		if err := t.printNode(w, child, i < len(n.children)-1, lines+bar); err != nil {
			return err
		}
	}
	return nil
}

func label(n *node) string {
	switch {
	case n.style.Display == DisplayNone:
		return "NONE"
	case len(n.children) == 0:
		return "LEAF"
	case n.style.Direction == Column:
		return "FLEX COL"
	default:
		return "FLEX ROW"
	}
}
