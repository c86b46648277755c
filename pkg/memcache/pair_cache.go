// pkg/mem/pair_cache.go
package mem

import (
	"strings"
	"sync"
	"time"
)

// PairResult is a cached distance lookup between two free-text locations.
type PairResult struct {
	DistanceKm      float64
	DurationMinutes float64
}

type PairCache interface {
	Get(from, to string) (PairResult, bool)
	Set(from, to string, result PairResult, ttl time.Duration)
}

type pairEntry struct {
	result    PairResult
	expiresAt time.Time
}

type PairCacheStore struct {
	mu   sync.RWMutex
	data map[string]pairEntry
}

func NewPairCache() *PairCacheStore {
	return &PairCacheStore{
		data: make(map[string]pairEntry),
	}
}

func pairKey(from, to string) string {
	return strings.ToLower(strings.TrimSpace(from)) + "|" + strings.ToLower(strings.TrimSpace(to))
}

func (s *PairCacheStore) Get(from, to string) (PairResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[pairKey(from, to)]
	if !ok || time.Now().After(e.expiresAt) {
		return PairResult{}, false
	}
	return e.result, true
}

func (s *PairCacheStore) Set(from, to string, result PairResult, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[pairKey(from, to)] = pairEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
}
