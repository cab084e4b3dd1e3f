package fbr

import (
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// lockedCache is the documented way to share a Cache across goroutines:
// a caller-held mutex around every method call. The cache itself has no
// internal locking.
type lockedCache[K comparable, V any] struct {
	mu sync.Mutex
	c  *Cache[K, V]
}

func (l *lockedCache[K, V]) Get(k K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Get(k)
}

func (l *lockedCache[K, V]) Put(k K, v V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Put(k, v)
}

func (l *lockedCache[K, V]) Remove(k K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Remove(k)
}

func (l *lockedCache[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Len()
}

// A mixed workload of concurrent Get/Put/Remove on random keys through the
// external mutex. Should pass under `-race` without detector reports.
func TestRace_ExternalMutex(t *testing.T) {
	lc := &lockedCache[string, []byte]{
		c: New[string, []byte](Options[string, []byte]{
			Capacity:     2_048,
			AgeThreshold: 1, // keep aging passes frequent under load
		}),
	}

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 10_000
	deadline := time.Now().Add(2 * time.Second)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		id := w
		g.Go(func() error {
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				k := "k:" + strconv.Itoa(r.Intn(keyspace))
				switch r.Intn(100) {
				case 0, 1, 2, 3, 4: // ~5% — Remove
					lc.Remove(k)
				case 5, 6, 7, 8, 9, 10, 11, 12, 13, 14: // ~10% — Put
					lc.Put(k, []byte("x"))
				default: // ~85% — Get
					lc.Get(k)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if n := lc.Len(); n > 2_048 {
		t.Fatalf("Len %d exceeds capacity after concurrent workload", n)
	}
}
