package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_InsertGet(t *testing.T) {
	a := New[string](4)

	id := a.Insert("root")
	v := a.Get(id)
	require.NotNil(t, v)
	assert.Equal(t, "root", *v)
	assert.Equal(t, 1, a.Len())
}

func TestArena_RemoveInvalidatesHandle(t *testing.T) {
	a := New[string](0)

	id := a.Insert("a")
	v, ok := a.Remove(id)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	assert.Nil(t, a.Get(id), "stale handle must not resolve")
	_, ok = a.Remove(id)
	assert.False(t, ok, "double remove must fail")
	assert.Equal(t, 0, a.Len())
}

func TestArena_SlotReuseBumpsGeneration(t *testing.T) {
	a := New[int](0)

	first := a.Insert(1)
	a.Remove(first)
	second := a.Insert(2)

	assert.Equal(t, first.Index, second.Index, "freed slot should be reused")
	assert.NotEqual(t, first.Generation, second.Generation)
	assert.Nil(t, a.Get(first))
	require.NotNil(t, a.Get(second))
	assert.Equal(t, 2, *a.Get(second))
}

func TestArena_Clear(t *testing.T) {
	a := New[int](0)
	ids := []ID{a.Insert(1), a.Insert(2), a.Insert(3)}

	a.Clear()

	assert.Equal(t, 0, a.Len())
	for _, id := range ids {
		assert.Nil(t, a.Get(id))
	}

	id := a.Insert(4)
	assert.NotNil(t, a.Get(id))
	assert.Equal(t, 1, a.Len())
}

func TestArena_PackUnpack(t *testing.T) {
	type tc struct {
		id ID
	}

	tests := map[string]tc{
		"first slot":       {id: ID{Index: 0, Generation: 1}},
		"large generation": {id: ID{Index: 7, Generation: 1<<32 - 1}},
		"large index":      {id: ID{Index: 1 << 20, Generation: 3}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			packed := tt.id.Pack()
			assert.NotZero(t, packed)
			got, ok := Unpack(packed)
			require.True(t, ok)
			assert.Equal(t, tt.id, got)
		})
	}

	_, ok := Unpack(0)
	assert.False(t, ok, "zero must never unpack")
}

func TestArena_All(t *testing.T) {
	a := New[int](0)
	a.Insert(10)
	mid := a.Insert(20)
	a.Insert(30)
	a.Remove(mid)

	var seen []int
	a.All(func(_ ID, v *int) bool {
		seen = append(seen, *v)
		return true
	})
	assert.Equal(t, []int{10, 30}, seen)
}
