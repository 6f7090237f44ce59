package stores

import (
	"context"
	"sync"

	"log-analyzer/internal/models"
)

// SnapshotStore keeps the most recently published StatisticsSnapshot in
// memory for read-side consumers (the HTTP stats endpoint). Snapshots are
// immutable, so readers get the pointer as-is; only the pointer swap is
// guarded.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Publish(ctx context.Context, snapshot *models.StatisticsSnapshot) error
	Latest() *models.StatisticsSnapshot
}

type snapshotStore struct {
	mu     sync.RWMutex
	latest *models.StatisticsSnapshot
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

func (s *snapshotStore) Publish(_ context.Context, snapshot *models.StatisticsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snapshot
	return nil
}

// Latest returns the last published snapshot, or nil before the first cycle.
func (s *snapshotStore) Latest() *models.StatisticsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
