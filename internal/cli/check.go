package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/boxtree"
	"github.com/grindlemire/boxtree/internal/scene"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scene.yaml>...",
		Short: "Validate scenes and verify tree invariants",
		Long: `Load each scene, build and lay it out, then verify the tree's structural
invariants. Every failing scene is reported, not just the first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootOpts, args)
		},
	}
}

type checkResult struct {
	path  string
	nodes int
	err   error
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, args []string) error {
	files, err := collectSceneFiles(args)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to collect scenes", err)
	}
	if len(files) == 0 {
		return NewExitError(ExitCommandError, "no scene files found")
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(workers(rootOpts.Config.Layout.Workers))
	for i, path := range files {
		g.Go(func() error {
			results[i] = checkFile(rootOpts, path)
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	var failed error
	for _, r := range results {
		if r.err != nil {
			failed = multierr.Append(failed, r.err)
			fmt.Fprintf(out, "FAIL %s\n", r.path)
			for _, err := range multierr.Errors(r.err) {
				fmt.Fprintf(out, "     %v\n", err)
			}
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d nodes)\n", r.path, r.nodes)
	}

	if failed != nil {
		rootOpts.Log.Debug("check failed", zap.Error(failed))
		return NewExitError(ExitFailure, fmt.Sprintf("%d scene(s) failed", countFailed(results)))
	}
	return nil
}

func checkFile(rootOpts *RootOptions, path string) checkResult {
	s, err := scene.Load(path)
	if err != nil {
		return checkResult{path: path, err: unwrapInvalid(err)}
	}
	c, err := s.Compute(s.Available.Size(), boxtree.WithCapacity(rootOpts.Config.Layout.Capacity))
	if err != nil {
		return checkResult{path: path, err: err}
	}
	if err := c.Tree.Check(); err != nil {
		return checkResult{path: path, err: err}
	}
	return checkResult{path: path, nodes: c.Tree.Len()}
}

// unwrapInvalid digs the aggregated validation errors out of a load error so each
// problem is listed on its own line.
func unwrapInvalid(err error) error {
	for e := err; e != nil; {
		if errs := multierr.Errors(e); len(errs) > 1 {
			return e
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return err
}

func countFailed(results []checkResult) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}
