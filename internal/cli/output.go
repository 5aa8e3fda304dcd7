package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxtree/internal/scene"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// extension returns the file extension used when writing results to a directory.
func extension(format string) string {
	switch format {
	case "json":
		return ".json"
	case "yaml":
		return ".yaml"
	default:
		return ".txt"
	}
}

// palette colors the text output.
type palette struct {
	heading func(string, ...any) string
	id      func(string, ...any) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{heading: fmt.Sprintf, id: fmt.Sprintf}
	}
	heading := color.New(color.Bold, color.FgCyan)
	heading.EnableColor()
	id := color.New(color.FgGreen)
	id.EnableColor()
	return palette{heading: heading.SprintfFunc(), id: id.SprintfFunc()}
}

// useColor decides whether w gets colored output. "auto" colors terminals only.
func useColor(mode string, noColor bool, w io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeResults writes results in the requested format.
func writeResults(w io.Writer, format string, results []*scene.Result, p palette) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeText(w, r, p); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeText prints a result as an indented tree:
//
//	== app (scenes/app.yaml)
//	app [x:0 y:0 w:40 h:10] content 38x8
//	└── header [x:0 y:0 w:38 h:1] content 11x1
func writeText(w io.Writer, r *scene.Result, p palette) error {
	heading := r.Scene
	if r.Path != "" {
		heading += " (" + r.Path + ")"
	}
	if _, err := fmt.Fprintln(w, p.heading("== %s", heading)); err != nil {
		return err
	}
	return writeTextNode(w, r.Root, "", "", p)
}

func writeTextNode(w io.Writer, n *scene.NodeResult, prefix, childPrefix string, p palette) error {
	_, err := fmt.Fprintf(w, "%s%s [x:%g y:%g w:%g h:%g] content %gx%g\n",
		prefix, p.id("%s", n.ID), n.X, n.Y, n.Width, n.Height, n.ContentWidth, n.ContentHeight)
	if err != nil {
		return err
	}

	for i, c := range n.Children {
		branch, next := "├── ", "│   "
		if i == len(n.Children)-1 {
			branch, next = "└── ", "    "
		}
		if err := writeTextNode(w, c, childPrefix+branch, childPrefix+next, p); err != nil {
			return err
		}
	}
	return nil
}
