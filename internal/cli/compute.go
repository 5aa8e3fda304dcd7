package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/grindlemire/boxtree"
	"github.com/grindlemire/boxtree/internal/scene"
)

type computeOptions struct {
	format      string
	unrounded   bool
	fitTerminal bool
	noColor     bool
	outDir      string
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute <scene.yaml>...",
		Short: "Lay out scenes and print every node's geometry",
		Long: `Lay out one or more scenes and print the computed layout of every node.

Each scene is computed in its own tree; several scenes are laid out in parallel.
Paths may be files, directories, or "dir/..." to search recursively.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (text|json|yaml); defaults to the configured format")
	cmd.Flags().BoolVar(&opts.unrounded, "unrounded", false, "report fractional layouts instead of whole pixels")
	cmd.Flags().BoolVar(&opts.fitTerminal, "fit-terminal", false, "use the terminal size as the available space")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "write one file per scene into this directory")

	return cmd
}

func runCompute(cmd *cobra.Command, rootOpts *RootOptions, opts *computeOptions, args []string) error {
	cfg := rootOpts.Config
	log := rootOpts.Log

	format := opts.format
	if format == "" {
		format = cfg.Output.Format
	}
	if !isValidFormat(format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats))
	}

	files, err := collectSceneFiles(args)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to collect scenes", err)
	}
	if len(files) == 0 {
		return NewExitError(ExitCommandError, "no scene files found")
	}

	var override *boxtree.Size[boxtree.AvailableSpace]
	if opts.fitTerminal {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read terminal size", err)
		}
		space := boxtree.DefiniteSpace(float32(w), float32(h))
		override = &space
		log.Debug("using terminal size", zap.Int("width", w), zap.Int("height", h))
	}

	results := make([]*scene.Result, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers(cfg.Layout.Workers))
	for i, path := range files {
		g.Go(func() error {
			r, err := computeFile(ctx, rootOpts, path, override, opts.unrounded)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WrapExitError(ExitFailure, "layout failed", err)
	}

	if opts.outDir != "" {
		return writeOutDir(opts.outDir, format, results, log)
	}
	p := newPalette(useColor(cfg.Output.Color, opts.noColor, cmd.OutOrStdout()))
	return writeResults(cmd.OutOrStdout(), format, results, p)
}

// computeFile lays out one scene in a tree of its own.
func computeFile(ctx context.Context, rootOpts *RootOptions, path string, override *boxtree.Size[boxtree.AvailableSpace], unrounded bool) (*scene.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	space := s.Available.Size()
	if override != nil {
		space = *override
	}

	c, err := s.Compute(space,
		boxtree.WithCapacity(rootOpts.Config.Layout.Capacity),
		boxtree.WithLogger(rootOpts.Log.Named("tree").With(zap.String("scene", s.Name))),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rootOpts.Log.Debug("scene computed", zap.String("scene", s.Name), zap.String("path", path), zap.Int("nodes", c.Tree.Len()))
	return c.Result(unrounded)
}

func workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// writeOutDir writes each result to its own file, named after the scene.
func writeOutDir(dir, format string, results []*scene.Result, log *zap.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WrapExitError(ExitCommandError, "failed to create output directory", err)
	}

	p := newPalette(false)
	used := make(map[string]bool, len(results))
	for _, r := range results {
		var buf bytes.Buffer
		if err := writeResults(&buf, format, []*scene.Result{r}, p); err != nil {
			return WrapExitError(ExitFailure, "failed to encode result", err)
		}

		name := outName(r.Scene, used)
		path := filepath.Join(dir, name+extension(format))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return WrapExitError(ExitCommandError, "failed to write result", err)
		}
		log.Info("wrote layout", zap.String("scene", r.Scene), zap.String("path", path))
	}
	return nil
}

// outName slugs a scene name into a file name not yet in used. Scenes whose
// names slug the same get -2, -3, ... in the order they were given.
func outName(sceneName string, used map[string]bool) string {
	base := slug.Make(sceneName)
	if base == "" {
		base = "scene"
	}
	name := base
	for i := 2; used[name]; i++ {
		name = base + "-" + strconv.Itoa(i)
	}
	used[name] = true
	return name
}
