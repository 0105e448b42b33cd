package stats

import (
	"math/rand"
	"sync"
)

// Rand is the randomness source for message and center selection. Injected
// so deterministic tests can seed it; *rand.Rand satisfies it directly.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a seeded Rand safe for concurrent use. Recompute
// calls run on arbitrary request goroutines, and *rand.Rand alone is not
// goroutine-safe.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
