package boxtree

// maxMeasureEntries bounds the size-only results kept per node. A node is sized
// under at most a couple of constraints per pass (its parent's measuring pass and
// its own layout pass), so a few slots are enough to keep clean siblings warm.
const maxMeasureEntries = 4

// cacheKey is the input signature a result was computed under.
type cacheKey struct {
	known     Size[Dim]
	available Size[AvailableSpace]
}

type sizeEntry struct {
	key  cacheKey
	size Size[float32]
}

// layoutCache holds a node's results. final is the full layout from the last
// layout pass; its descendants were laid out by that same pass, so a hit on it
// can skip the whole subtree. measures only hold sizes.
type layoutCache struct {
	final      Layout
	finalKey   cacheKey
	finalValid bool

	measures [maxMeasureEntries]sizeEntry
	count    int
	next     int
}

// layout returns the final layout if it was computed under key.
func (c *layoutCache) layout(key cacheKey) (Layout, bool) {
	if c.finalValid && c.finalKey == key {
		return c.final, true
	}
	return Layout{}, false
}

// size returns a border-box size computed under key by either kind of pass.
func (c *layoutCache) size(key cacheKey) (Size[float32], bool) {
	if c.finalValid && c.finalKey == key {
		return c.final.Size, true
	}
	for i := range c.count {
		if c.measures[i].key == key {
			return c.measures[i].size, true
		}
	}
	return Size[float32]{}, false
}

func (c *layoutCache) storeLayout(key cacheKey, l Layout) {
	c.final = l
	c.finalKey = key
	c.finalValid = true
}

func (c *layoutCache) storeSize(key cacheKey, size Size[float32]) {
	for i := range c.count {
		if c.measures[i].key == key {
			c.measures[i].size = size
			return
		}
	}
	c.measures[c.next] = sizeEntry{key: key, size: size}
	c.next = (c.next + 1) % maxMeasureEntries
	if c.count < maxMeasureEntries {
		c.count++
	}
}
