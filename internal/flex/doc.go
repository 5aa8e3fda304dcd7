// Package flex is the default layout engine: a single-line flexbox.
//
// The engine computes one node at a time. Its children arrive already sized
// for the space returned by ChildSpace, so the engine never recurses; it only
// resolves the node's own box and distributes its children inside it.
package flex
