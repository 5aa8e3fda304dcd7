// Package arena provides slot storage with generational handles.
//
// Freed slots go on a free list and are reused by later inserts. Every reuse bumps the
// slot's generation, so a handle taken before the slot was freed no longer resolves.
package arena

// ID is a handle into an Arena. The zero ID never resolves.
type ID struct {
	Index      uint32
	Generation uint32
}

// Pack encodes the ID as a single number. The slot index is stored plus one so that
// the zero value stays invalid.
func (id ID) Pack() uint64 {
	return uint64(id.Generation)<<32 | uint64(id.Index+1)
}

// Unpack is the inverse of Pack. ok is false for zero.
func Unpack(v uint64) (id ID, ok bool) {
	idx := uint32(v)
	if idx == 0 {
		return ID{}, false
	}
	return ID{Index: idx - 1, Generation: uint32(v >> 32)}, true
}

type slot[T any] struct {
	value      T
	generation uint32
	live       bool
}

// Arena stores values of type T in reusable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// New creates an arena with room for capacity values before growing.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{slots: make([]slot[T], 0, capacity)}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) ID {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		return ID{Index: idx, Generation: s.generation}
	}
	// Generation starts at 1 so a zero generation never appears in a live handle.
	a.slots = append(a.slots, slot[T]{value: v, generation: 1, live: true})
	return ID{Index: uint32(len(a.slots) - 1), Generation: 1}
}

// Get returns a pointer to the value for id, or nil if id is stale or unknown.
// The pointer is valid until the next Insert.
func (a *Arena[T]) Get(id ID) *T {
	if int(id.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.Index]
	if !s.live || s.generation != id.Generation {
		return nil
	}
	return &s.value
}

// Remove frees the slot for id and returns the value it held.
func (a *Arena[T]) Remove(id ID) (T, bool) {
	var zero T
	if a.Get(id) == nil {
		return zero, false
	}
	s := &a.slots[id.Index]
	v := s.value
	s.value = zero
	s.live = false
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	a.free = append(a.free, id.Index)
	a.live--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear drops every value. Handles issued before Clear never resolve again.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			s.value = zero
			s.live = false
			s.generation++
			if s.generation == 0 {
				s.generation = 1
			}
		}
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}

// All calls fn for every live value in slot order. Iteration stops if fn returns false.
func (a *Arena[T]) All(fn func(ID, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(ID{Index: uint32(i), Generation: s.generation}, &s.value) {
			return
		}
	}
}
