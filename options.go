package boxtree

import (
	"errors"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Tree.
type Option func(*Tree) error

// WithEngine sets the layout algorithm. The default is the built-in flexbox engine.
func WithEngine(e Engine) Option {
	return func(t *Tree) error {
		if e == nil {
			return errors.New("engine must not be nil")
		}
		t.engine = e
		return nil
	}
}

// WithCapacity pre-allocates room for n nodes.
func WithCapacity(n int) Option {
	return func(t *Tree) error {
		if n < 0 {
			return errors.New("capacity must not be negative")
		}
		t.capacity = n
		return nil
	}
}

// WithoutRounding makes Layout return fractional values.
// Rounding can be turned back on with EnableRounding.
func WithoutRounding() Option {
	return func(t *Tree) error {
		t.rounding = false
		return nil
	}
}

// WithLogger sets the logger for debug output.
// By default the tree logs to the file named by BOXTREE_DEBUG, or nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tree) error {
		if log == nil {
			return errors.New("logger must not be nil")
		}
		t.log = log
		return nil
	}
}
