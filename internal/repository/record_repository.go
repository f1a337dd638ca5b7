package repository

import (
	"context"
	"sync"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

type recordRepository struct {
	mu      sync.RWMutex
	records map[string][]domain.HealthRecord
}

// NewRecordRepository creates a new in-memory health record repository
func NewRecordRepository() RecordRepository {
	return &recordRepository{
		records: make(map[string][]domain.HealthRecord),
	}
}

func (r *recordRepository) Add(ctx context.Context, record *domain.HealthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.UserID] = append(r.records[record.UserID], *record)
	return nil
}

// Latest returns the most recently recorded entry of a user
func (r *recordRepository) Latest(ctx context.Context, userID string) (*domain.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.HealthRecord
	for i := range r.records[userID] {
		rec := &r.records[userID][i]
		if latest == nil || rec.RecordedAt.After(latest.RecordedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}

	out := *latest
	return &out, nil
}
