// Package fbr provides a capacity-bounded, in-memory key/value cache with
// Frequency-Based Replacement: eviction combines a bounded per-entry
// reference count with recency order, and counts are periodically aged so
// that entries popular only in the past do not occupy the cache forever.
//
// # Design
//
//   - Storage: a map[K]*node for lookups plus two intrusive lists per entry —
//     a global recency list and the chain of the frequency bucket holding the
//     entry's current count. All operations are amortized O(1): one map
//     access and a constant number of pointer fixes.
//
//   - Counting: a new entry starts with a count of zero (one for
//     PutPriority) and every hit increments it, clamped to MaxFrequency.
//     Entries at the clamp share a single bucket ordered purely by recency,
//     so sufficiently hot entries compete with each other as in plain LRU.
//     This saturation is deliberate, not a defect.
//
//   - Eviction: when a new key arrives at capacity, the victim is the
//     least-recently-touched entry of the lowest populated bucket — smallest
//     count first, LRU among ties. The lowest bucket is found through a
//     bitset over bucket occupancy, never by walking entries.
//
//   - Aging: every AgeThreshold*Capacity hits, all counts are halved
//     (integer floor) and entries are rebucketed, preserving relative
//     recency among entries that collapse into the same bucket. Without
//     aging, a once-hot entry would keep a saturated count indefinitely.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Aging/Size signals.
//     By default NoopMetrics is used; plug the metrics/prom adapter to
//     export Prometheus metrics.
//
// # Basic usage
//
//	c := fbr.New[string, []byte](fbr.Options[string, []byte]{Capacity: 10_000})
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Remove("a")
//
// # Tuning
//
//	c := fbr.New[string, string](fbr.Options[string, string]{
//	    Capacity:     50_000,
//	    AgeThreshold: 10, // age roughly every 500k hits
//	    MaxFrequency: 4,  // coarser frequency classes, more LRU-like
//	})
//
// # Thread safety
//
// A Cache is a single-threaded building block with no internal locking and
// no blocking operations. To share one across goroutines, wrap every call in
// a caller-held mutex:
//
//	var mu sync.Mutex
//	mu.Lock()
//	v, ok := c.Get(k)
//	mu.Unlock()
package fbr
