package jobs

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func cloneRecord(rec Record) Record {
	rec.Features = slices.Clone(rec.Features)
	return rec
}

// Save upserts rec.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.JobID] = cloneRecord(rec)
	return nil
}

// Get returns the record for jobID.
func (s *MemoryStore) Get(_ context.Context, jobID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[jobID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, jobID)
	}
	return cloneRecord(rec), nil
}

// List returns every record ordered by creation time.
func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, cloneRecord(rec))
	}
	s.mu.RUnlock()
	sortRecords(out)
	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
