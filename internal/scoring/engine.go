package scoring

import (
	"sync"

	"github.com/floodhub/wardwatch/internal/ward"
)

// Engine caches the derived read-only views over the current district
// snapshot. Recompute runs synchronously on every dataset replace; reads
// serve the cached result.
type Engine struct {
	mu           sync.RWMutex
	aggregates   Aggregates
	distribution map[Bucket]int
}

func NewEngine() *Engine {
	return &Engine{distribution: Distribution(nil)}
}

func (e *Engine) Recompute(records []ward.DistrictRecord) {
	agg := ComputeAggregates(records)
	dist := Distribution(records)

	e.mu.Lock()
	e.aggregates = agg
	e.distribution = dist
	e.mu.Unlock()
}

func (e *Engine) Aggregates() Aggregates {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.aggregates
}

func (e *Engine) Distribution() map[Bucket]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[Bucket]int, len(e.distribution))
	for k, v := range e.distribution {
		out[k] = v
	}
	return out
}
