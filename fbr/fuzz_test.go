//go:build go1.18

package fbr

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Remove semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetRemove(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := New[string, string](Options[string, string]{Capacity: 16})

		// Put -> Get must return the same value.
		c.Put(k, v)
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Upsert must return the previous value and keep Len at 1.
		if prev, ok := c.Put(k, "other"); !ok || prev != v {
			t.Fatalf("upsert: want prev %q, got %q ok=%v", v, prev, ok)
		}
		if c.Len() != 1 {
			t.Fatalf("Len after upsert = %d, want 1", c.Len())
		}

		// Remove must return the current value exactly once.
		if got, ok := c.Remove(k); !ok || got != "other" {
			t.Fatalf("Remove: want %q true, got %q %v", "other", got, ok)
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Remove")
		}
		if _, ok := c.Remove(k); ok {
			t.Fatalf("second Remove must report absence")
		}

		// After removal, Put should admit the key again.
		c.Put(k, v)
		if got, ok := c.Peek(k); !ok || got != v {
			t.Fatalf("Put after Remove: want %q, got %q ok=%v", v, got, ok)
		}
	})
}

// Fuzz the eviction/aging machinery with a stream of small-keyspace
// operations derived from the input bytes. Cross-checks Len against a
// shadow map after every step.
func FuzzCache_OpStream(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte("get-put-remove"))
	f.Add(bytesOfAll())

	f.Fuzz(func(t *testing.T, ops []byte) {
		const limit = 1 << 12
		if len(ops) > limit {
			ops = ops[:limit]
		}

		c := New[byte, int](Options[byte, int]{
			Capacity:     8,
			AgeThreshold: 1, // age aggressively to exercise rebucketing
			MaxFrequency: 3,
		})
		for i, op := range ops {
			key := op & 0x0f // 16-key space over capacity 8 forces evictions
			switch op >> 6 {
			case 0:
				c.Get(key)
			case 1, 2:
				c.Put(key, i)
			default:
				c.Remove(key)
			}

			// Cross-check Len against the authoritative iteration.
			shadow := make(map[byte]struct{})
			c.Range(func(k byte, _ int, count int) bool {
				shadow[k] = struct{}{}
				if count < 0 || count > 3 {
					t.Fatalf("count %d outside [0,3] for key %d", count, k)
				}
				return true
			})
			if len(shadow) != c.Len() {
				t.Fatalf("Range saw %d entries, Len says %d", len(shadow), c.Len())
			}
			if c.Len() > 8 {
				t.Fatalf("Len %d exceeds capacity", c.Len())
			}
		}
	})
}

func bytesOfAll() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
