package memory

import (
	"sync"

	"github.com/Artem-be/HRTest/internal/usecase"
)

type FunnelRepo struct {
	mu     sync.RWMutex
	counts map[usecase.FunnelStep]map[int64]struct{}
}

func NewFunnelRepo() *FunnelRepo {
	return &FunnelRepo{counts: make(map[usecase.FunnelStep]map[int64]struct{})}
}

func (r *FunnelRepo) Hit(step usecase.FunnelStep, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.counts[step]
	if !ok {
		m = make(map[int64]struct{})
		r.counts[step] = m
	}
	m[userID] = struct{}{}
	return nil
}

func (r *FunnelRepo) Counts() map[usecase.FunnelStep]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[usecase.FunnelStep]int, len(r.counts))
	for s, set := range r.counts {
		out[s] = len(set)
	}
	return out
}
