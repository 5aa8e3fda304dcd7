package boxtree

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a handle refers to no live node.
	ErrNotFound = errors.New("node not found")

	// ErrIndexOutOfBounds means a child index is outside the valid range.
	ErrIndexOutOfBounds = errors.New("child index out of bounds")

	// ErrInvalidHierarchy means an operation would create a cycle or a duplicate child.
	ErrInvalidHierarchy = errors.New("invalid hierarchy")

	// ErrNotComputed means a live node has no layout yet.
	ErrNotComputed = errors.New("layout not computed")

	// ErrMeasurementFailed means the measure function did not return a usable size.
	ErrMeasurementFailed = errors.New("measurement failed")
)

// TreeError describes a failed tree operation.
//
// Err is one of the sentinel errors above, or the error an Engine returned.
// Cause, when set, is the underlying error that led to Err (for example the
// error a measure function returned). errors.Is matches both.
type TreeError struct {
	Op     string // Operation name, e.g. "add child"
	Node   NodeID // Node the operation failed on
	Detail string // Optional human-readable detail
	Err    error
	Cause  error
}

// Error implements the error interface.
func (e *TreeError) Error() string {
	msg := fmt.Sprintf("boxtree: %s %s: %v", e.Op, e.Node, e.Err)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the category and the cause to errors.Is and errors.As.
func (e *TreeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func notFound(op string, id NodeID) error {
	return &TreeError{Op: op, Node: id, Err: ErrNotFound}
}

func outOfBounds(op string, id NodeID, index, count int) error {
	return &TreeError{
		Op:     op,
		Node:   id,
		Err:    ErrIndexOutOfBounds,
		Detail: fmt.Sprintf("index %d, child count %d", index, count),
	}
}

func invalidHierarchy(op string, id NodeID, detail string) error {
	return &TreeError{Op: op, Node: id, Err: ErrInvalidHierarchy, Detail: detail}
}
