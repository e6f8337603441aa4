package manuscript

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/mathquest/app/internal/models"
)

// RandomValidator stands in for a remote vision service: it waits a fixed
// latency and accepts a manuscript with the configured probability.
type RandomValidator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
	latency     time.Duration
}

// NewRandomValidator builds a seeded stub. A zero seed uses the clock.
func NewRandomValidator(seed int64, successRate float64, latency time.Duration) *RandomValidator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomValidator{
		rng:         rand.New(rand.NewSource(seed)),
		successRate: successRate,
		latency:     latency,
	}
}

func (r *RandomValidator) Validate(ctx context.Context, _ models.Manuscript, _ models.Question) (models.ValidationOutcome, error) {
	if r.latency > 0 {
		timer := time.NewTimer(r.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.ValidationOutcome{}, ctx.Err()
		case <-timer.C:
		}
	}

	r.mu.Lock()
	roll := r.rng.Float64()
	r.mu.Unlock()

	return verdict(roll < r.successRate), nil
}
