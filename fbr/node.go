package fbr

// node is an intrusive cache entry owned by the Cache. Each node is linked
// into two lists at once: the global recency list (head = most recently
// touched) and the chain of the frequency bucket matching its current count.
// Keeping both sets of links on the entry makes every relocation a constant
// number of pointer fixes with no auxiliary allocations.
type node[K comparable, V any] struct {
	key K
	val V

	// Global recency links: head is the most recent, tail the least recent.
	rprev *node[K, V]
	rnext *node[K, V]

	// Bucket chain links; the node lives in buckets.chains[count].
	bprev *node[K, V]
	bnext *node[K, V]

	// Reference count, clamped to [0, Options.MaxFrequency].
	// Bucket membership must always match this value.
	count int
}
