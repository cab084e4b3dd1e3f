package fbr

// Cache is an in-memory, capacity-bounded key/value cache with
// frequency-based replacement. It is NOT safe for concurrent use;
// callers that share a Cache across goroutines must hold their own lock
// around every method call.
type Cache[K comparable, V any] struct {
	opt Options[K, V]

	m map[K]*node[K, V]

	// Global recency list: head is the most recently touched entry.
	head *node[K, V]
	tail *node[K, V]

	bk   buckets[K, V]
	size int

	// Aging bookkeeping: a pass runs once hits reaches ageEvery.
	hits     int
	ageEvery int
}

// New constructs a cache with the provided Options.
// Defaults:
//   - AgeThreshold == 0 => 100
//   - MaxFrequency == 0 => 8
//   - nil Metrics       => NoopMetrics
//
// New panics if Capacity <= 0 or if AgeThreshold/MaxFrequency are negative.
func New[K comparable, V any](opt Options[K, V]) *Cache[K, V] {
	if opt.Capacity <= 0 {
		panic("Capacity must be > 0")
	}
	if opt.AgeThreshold < 0 {
		panic("AgeThreshold must be >= 0")
	}
	if opt.MaxFrequency < 0 {
		panic("MaxFrequency must be >= 0")
	}
	if opt.AgeThreshold == 0 {
		opt.AgeThreshold = 100
	}
	if opt.MaxFrequency == 0 {
		opt.MaxFrequency = 8
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	return &Cache[K, V]{
		opt:      opt,
		m:        make(map[K]*node[K, V], opt.Capacity),
		bk:       newBuckets[K, V](opt.MaxFrequency),
		ageEvery: opt.AgeThreshold * opt.Capacity,
	}
}

// Get returns the value for k and a presence flag. A hit increments the
// entry's reference count (clamped to MaxFrequency), promotes it to the
// most-recent position of its bucket, and advances the aging counter.
// A miss changes no state.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	n, ok := c.m[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.touch(n)
	c.opt.Metrics.Hit()
	return n.val, true
}

// Put inserts or updates k→v. An update replaces the value in place and is
// treated exactly like a Get hit for counting and aging purposes; the
// previous value is returned with true. A new key at capacity first evicts
// the least-recent entry of the lowest populated frequency bucket, then
// inserts with a count of zero.
func (c *Cache[K, V]) Put(k K, v V) (V, bool) {
	if n, ok := c.m[k]; ok {
		prev := n.val
		n.val = v
		c.touch(n)
		return prev, true
	}
	c.insert(k, v, 0)
	var zero V
	return zero, false
}

// PutPriority behaves like Put but a newly inserted entry starts with a
// count of one instead of zero, so it outlives plain inserts under cyclic
// access patterns. This works best when only a small fraction of entries
// get priority. Updates of existing keys are identical to Put.
func (c *Cache[K, V]) PutPriority(k K, v V) (V, bool) {
	if n, ok := c.m[k]; ok {
		prev := n.val
		n.val = v
		c.touch(n)
		return prev, true
	}
	count := 1
	if count > c.opt.MaxFrequency {
		count = c.opt.MaxFrequency
	}
	c.insert(k, v, count)
	var zero V
	return zero, false
}

// Remove deletes k if present and returns its value. Explicit removal does
// not count as a hit or an eviction.
func (c *Cache[K, V]) Remove(k K) (V, bool) {
	n, ok := c.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.bk.remove(n)
	c.unlinkRecency(n)
	delete(c.m, k)
	c.size--
	c.opt.Metrics.Size(c.size)
	return n.val, true
}

// Peek returns the value for k without updating counts, recency, or the
// aging counter.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	if n, ok := c.m[k]; ok {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is resident, without side effects.
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.m[k]
	return ok
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return c.size }

// Capacity returns the fixed entry limit set at construction.
func (c *Cache[K, V]) Capacity() int { return c.opt.Capacity }

// Clear drops all entries and resets the aging counter. The configured
// capacity and thresholds are unchanged.
func (c *Cache[K, V]) Clear() {
	c.m = make(map[K]*node[K, V], c.opt.Capacity)
	c.head, c.tail = nil, nil
	c.bk.reset()
	c.size = 0
	c.hits = 0
	c.opt.Metrics.Size(0)
}

// Range calls fn for every entry from most to least recently touched,
// passing the key, value, and current reference count. Iteration stops
// early if fn returns false. fn must not mutate the cache.
func (c *Cache[K, V]) Range(fn func(k K, v V, count int) bool) {
	for n := c.head; n != nil; n = n.rnext {
		if !fn(n.key, n.val, n.count) {
			return
		}
	}
}

// -------------------- internals --------------------

// touch applies a hit to n: it advances the aging counter (running an aging
// pass first if the threshold is reached, so the pass rescales n's old
// count), then bumps n's count with clamp and moves it to the most-recent
// position of the target bucket and of the recency list.
func (c *Cache[K, V]) touch(n *node[K, V]) {
	c.hits++
	if c.hits >= c.ageEvery {
		c.age()
		c.hits = 0
	}

	next := n.count + 1
	if next > c.opt.MaxFrequency {
		next = c.opt.MaxFrequency
	}
	c.bk.move(n, next)
	c.moveRecencyFront(n)
}

// age halves every entry's count (integer floor) and rebuckets accordingly.
// The rebuild walks the recency list from least to most recent so that
// entries collapsing into the same bucket keep their relative recency order.
// Aging never evicts and never changes Len().
func (c *Cache[K, V]) age() {
	c.bk.reset()
	for n := c.tail; n != nil; n = n.rprev {
		c.bk.pushFront(n.count/2, n)
	}
	c.opt.Metrics.Aging()
}

// insert admits a new key with the given initial count, evicting first if
// the cache is full. The evicted node's allocation is reused for the new
// entry, so a cache that has reached capacity stops allocating nodes.
func (c *Cache[K, V]) insert(k K, v V, count int) {
	var n *node[K, V]
	if c.size == c.opt.Capacity {
		n = c.evict()
		n.key, n.val = k, v
	} else {
		n = &node[K, V]{key: k, val: v}
	}
	c.m[k] = n
	c.bk.pushFront(count, n)
	c.pushRecencyFront(n)
	c.size++
	c.opt.Metrics.Size(c.size)
}

// evict removes the least-recently-touched entry of the lowest populated
// frequency bucket and returns its node for reuse. Only called with
// size == Capacity, so a victim always exists and is never the entry
// currently being inserted.
func (c *Cache[K, V]) evict() *node[K, V] {
	n := c.bk.leastRecent(c.bk.lowest())
	c.bk.remove(n)
	c.unlinkRecency(n)
	delete(c.m, n.key)
	c.size--
	c.opt.Metrics.Evict()
	if cb := c.opt.OnEvict; cb != nil {
		cb(n.key, n.val)
	}
	return n
}

// pushRecencyFront inserts n at the most-recent end of the global list.
func (c *Cache[K, V]) pushRecencyFront(n *node[K, V]) {
	n.rprev = nil
	n.rnext = c.head
	if c.head != nil {
		c.head.rprev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// moveRecencyFront promotes n to the most-recent end in O(1).
func (c *Cache[K, V]) moveRecencyFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	// detach
	if n.rprev != nil {
		n.rprev.rnext = n.rnext
	}
	if n.rnext != nil {
		n.rnext.rprev = n.rprev
	}
	if c.tail == n {
		c.tail = n.rprev
	}
	// insert at head
	n.rprev = nil
	n.rnext = c.head
	if c.head != nil {
		c.head.rprev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

// unlinkRecency removes n from the global list in O(1).
func (c *Cache[K, V]) unlinkRecency(n *node[K, V]) {
	if n.rprev != nil {
		n.rprev.rnext = n.rnext
	}
	if n.rnext != nil {
		n.rnext.rprev = n.rprev
	}
	if c.head == n {
		c.head = n.rnext
	}
	if c.tail == n {
		c.tail = n.rprev
	}
	n.rprev, n.rnext = nil, nil
}
