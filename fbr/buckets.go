package fbr

import "github.com/IvanBrykalov/fbrcache/internal/bitset"

// chain is one frequency bucket: entries sharing a count, ordered by recency.
// head is the most recently touched member, tail the eviction end.
type chain[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
}

// buckets indexes the chains for counts 0..max and tracks which of them are
// non-empty, so the eviction path finds the lowest populated count without
// scanning the full range.
type buckets[K comparable, V any] struct {
	chains []chain[K, V]
	occ    *bitset.Set
}

func newBuckets[K comparable, V any](maxCount int) buckets[K, V] {
	return buckets[K, V]{
		chains: make([]chain[K, V], maxCount+1),
		occ:    bitset.New(maxCount + 1),
	}
}

// pushFront links n at the most-recent end of the chain for count c
// and records n's membership. n must not currently be on any chain.
func (b *buckets[K, V]) pushFront(c int, n *node[K, V]) {
	n.count = c
	ch := &b.chains[c]
	n.bprev = nil
	n.bnext = ch.head
	if ch.head != nil {
		ch.head.bprev = n
	} else {
		b.occ.Set(c)
	}
	ch.head = n
	if ch.tail == nil {
		ch.tail = n
	}
}

// remove unlinks n from its current chain in O(1).
func (b *buckets[K, V]) remove(n *node[K, V]) {
	ch := &b.chains[n.count]
	if n.bprev != nil {
		n.bprev.bnext = n.bnext
	}
	if n.bnext != nil {
		n.bnext.bprev = n.bprev
	}
	if ch.head == n {
		ch.head = n.bnext
	}
	if ch.tail == n {
		ch.tail = n.bprev
	}
	n.bprev, n.bnext = nil, nil
	if ch.head == nil {
		b.occ.Clear(n.count)
	}
}

// move relocates n to the most-recent end of the chain for count c.
// Used for hit-driven increments; aging rebuilds chains wholesale instead.
func (b *buckets[K, V]) move(n *node[K, V], c int) {
	b.remove(n)
	b.pushFront(c, n)
}

// lowest returns the smallest count with a non-empty chain, or -1 if all
// chains are empty.
func (b *buckets[K, V]) lowest() int { return b.occ.Min() }

// leastRecent returns the eviction-end entry of the chain for count c.
func (b *buckets[K, V]) leastRecent(c int) *node[K, V] { return b.chains[c].tail }

// reset detaches every chain without touching the nodes' links; callers
// re-link nodes afterwards (aging) or drop them entirely (clear).
func (b *buckets[K, V]) reset() {
	for i := range b.chains {
		b.chains[i] = chain[K, V]{}
	}
	b.occ.Reset()
}
