// Package boxtree is a retained-mode layout tree.
//
// A [Tree] owns styled nodes in a generational arena. Structural edits and style
// changes mark nodes dirty up to the root; [Tree.ComputeLayout] walks from a root,
// reuses cached results for clean subtrees, asks the [Engine] to size everything else,
// and stores both an unrounded and a pixel-rounded [Layout] on every node it visits.
//
// Leaves can report their own content size through a [MeasureFunc] passed to
// [Tree.ComputeLayoutWithMeasure]; pkg/textmeasure provides one for text.
//
// A Tree has a single owner. It is not safe for concurrent use.
package boxtree
