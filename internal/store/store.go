package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"solar_household/internal/model"
)

// StoredRun is a completed simulation kept for later browsing.
type StoredRun struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Household model.Household      `json:"household"`
	Run       *model.SimulationRun `json:"run"`
}

// Store keeps completed simulation runs in memory, keyed by run ID.
type Store struct {
	mu    sync.RWMutex
	runs  map[string]*StoredRun
	order []string // insertion order for listing
}

func New() *Store {
	return &Store{
		runs: make(map[string]*StoredRun),
	}
}

// Add stores a finished run under a fresh ID and returns the stored record.
func (s *Store) Add(h model.Household, run *model.SimulationRun) *StoredRun {
	sr := &StoredRun{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Household: h,
		Run:       run,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[sr.ID] = sr
	s.order = append(s.order, sr.ID)
	return sr
}

// Get returns the run with the given ID.
func (s *Store) Get(id string) (*StoredRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sr, ok := s.runs[id]
	return sr, ok
}

// List returns all stored runs in insertion order.
func (s *Store) List() []*StoredRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*StoredRun, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.runs[id])
	}
	return out
}

// Len returns the number of stored runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
