package excuse

import (
	"math/rand/v2"
	"sync"
)

// Rand is the source of randomness for the generator: the AI/fallback gate,
// the pool pick and the fallback believability draw.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns the process-wide math/rand/v2 source for seed 0, or a
// deterministic PCG source otherwise.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// lockedRand guards a *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
