package service

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies uniform random integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// lockedRand makes a *rand.Rand safe for concurrent handlers
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a concurrency-safe source seeded with seed.
// A zero seed uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// shuffler adapts src to the rand.Shuffle signature (Fisher-Yates)
func shuffler(src RandomSource) func(n int, swap func(i, j int)) {
	return func(n int, swap func(i, j int)) {
		for i := n - 1; i > 0; i-- {
			swap(i, src.Intn(i+1))
		}
	}
}

// sample picks count distinct elements of items without repeats
func sample(src RandomSource, items []string, count int) []string {
	pool := make([]string, len(items))
	copy(pool, items)
	for i := 0; i < count; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
