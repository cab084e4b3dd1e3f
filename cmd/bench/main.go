// Command bench replays a synthetic Zipf trace against several replacement
// policies and reports their hit ratios, with optional pprof/Prometheus
// endpoints for the FBR run.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/IvanBrykalov/fbrcache/fbr"
	pmet "github.com/IvanBrykalov/fbrcache/metrics/prom"
	arc "github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// candidate is a cache under test, driven cache-aside: on a miss the key is
// inserted so the next reference can hit.
type candidate struct {
	name string
	get  func(string) bool
	add  func(string)
}

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 10_000, "cache capacity (entries)")
		ageTh    = flag.Int("age", 100, "FBR aging threshold (passes every age*cap hits)")
		maxFreq  = flag.Int("cmax", 8, "FBR frequency clamp")

		ops   = flag.Int("ops", 1_000_000, "trace length (references)")
		keys  = flag.Int("keys", 100_000, "keyspace size")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics for the FBR candidate ----
	var metrics fbr.Metrics
	if *metricsAddr != "" {
		metrics = pmet.New(nil, "fbr", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Candidates ----
	fc := fbr.New[string, string](fbr.Options[string, string]{
		Capacity:     *capacity,
		AgeThreshold: *ageTh,
		MaxFrequency: *maxFreq,
		Metrics:      metrics,
	})

	lc, err := lru.New[string, string](*capacity)
	if err != nil {
		log.Fatalf("lru: %v", err)
	}
	ac, err := arc.NewARC[string, string](*capacity)
	if err != nil {
		log.Fatalf("arc: %v", err)
	}

	candidates := []candidate{
		{
			name: "fbr",
			get:  func(k string) bool { _, ok := fc.Get(k); return ok },
			add:  func(k string) { fc.Put(k, "v") },
		},
		{
			name: "lru",
			get:  func(k string) bool { _, ok := lc.Get(k); return ok },
			add:  func(k string) { lc.Add(k, "v") },
		},
		{
			name: "arc",
			get:  func(k string) bool { _, ok := ac.Get(k); return ok },
			add:  func(k string) { ac.Add(k, "v") },
		},
	}

	fmt.Printf("cap=%d ops=%d keys=%d zipf_s=%.2f zipf_v=%.2f seed=%d age=%d cmax=%d\n",
		*capacity, *ops, *keys, *zipfS, *zipfV, *seed, *ageTh, *maxFreq)

	// Replay the identical trace for every candidate: same seed, same keys.
	for _, cand := range candidates {
		r := rand.New(rand.NewSource(*seed))
		z := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))

		hits := 0
		start := time.Now()
		for i := 0; i < *ops; i++ {
			k := "k:" + strconv.FormatUint(z.Uint64(), 10)
			if cand.get(k) {
				hits++
			} else {
				cand.add(k)
			}
		}
		elapsed := time.Since(start)

		fmt.Printf("%-4s hits=%d  hit-rate=%.2f%%  (%.0f ops/s)\n",
			cand.name, hits, float64(hits)/float64(*ops)*100,
			float64(*ops)/elapsed.Seconds())
	}
}
