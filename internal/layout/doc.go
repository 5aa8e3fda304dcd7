// Package layout holds the geometry and style vocabulary shared by the tree core and
// the layout algorithms that plug into it.
//
// It defines sizes, edges, available space and known dimensions, the node [Style],
// the computed [Layout], and the [Engine] protocol a sizing algorithm implements.
// Types are re-exported through the root boxtree package for public consumption.
package layout
