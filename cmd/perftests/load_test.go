package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"campus-market/internal/listingService"
	model "campus-market/internal/models"
	repository "campus-market/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumListings     int
	BidsPerUser     int
	ReadRatio       int
	MaxBidIncrement int
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupRepo creates the repository and listing service with seeded listings
func setupRepo(numListings int) (*repository.MemoryRepo, *listing.ListingService) {
	repo := repository.NewMemoryRepo()
	svc := listing.NewListingService(repo, repo)
	for i := 0; i < numListings; i++ {
		seedListing(repo, fmt.Sprintf("item_%d", i), model.ModeBoth)
	}
	return repo, svc
}

// Benchmark_Load_Marketplace runs multiple scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 10, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 20, 0, 20, false},
		{"Mixed-Workload", 300, 50, 15, 7, 30, false},
		{"ReadHeavy", 200, 50, 5, 9, 20, false},
		{"Edge-Case-SingleListing", 100, 1, 10, 5, 10, false},
		{"Peak-Burst", 500, 50, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	_, svc := setupRepo(s.NumListings)
	ctx := context.Background()

	var totalOps, successfulBids, failedBids, totalReads int64
	listingSuccess := make([]int64, s.NumListings)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			listingIndex := rnd.Intn(s.NumListings)
			listingID := fmt.Sprintf("item_%d", listingIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.Get(ctx, listingID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				amount := float64(100 + rnd.Intn(s.MaxBidIncrement))
				if _, err := svc.PlaceBid(ctx, listingID, bidder(rnd.Int()), &amount); err != nil {
					b.Logf("ignored bid error: %v", err)
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&listingSuccess[listingIndex], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Listings: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumListings, totalOps, successfulBids, failedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range listingSuccess {
		if v > 0 {
			b.Logf("Listing %d successful bids: %d", i, v)
		}
	}
}
