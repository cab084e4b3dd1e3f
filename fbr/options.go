package fbr

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	// Aging is called once per completed aging pass.
	Aging()
	Size(entries int)
}

// Options configures the cache behavior. Zero values are safe;
// sane defaults are applied in New():
//   - AgeThreshold == 0 => 100
//   - MaxFrequency == 0 => 8
//   - nil Metrics       => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit, fixed for the cache's lifetime.
	// Must be > 0.
	Capacity int

	// AgeThreshold controls the aging cadence: an aging pass runs once
	// every AgeThreshold*Capacity hits, halving all reference counts.
	// Smaller values forget past popularity faster.
	AgeThreshold int

	// MaxFrequency is the upper clamp on a single entry's reference count.
	// All entries at the clamp share one bucket and are ordered purely by
	// recency, so sufficiently hot entries compete as in plain LRU.
	MaxFrequency int

	// Observability
	// OnEvict is called for every capacity eviction (not for explicit
	// Remove). Keep callbacks lightweight; they run inside the operation.
	OnEvict func(k K, v V)
	Metrics Metrics
}
