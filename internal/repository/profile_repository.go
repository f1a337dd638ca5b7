package repository

import (
	"context"
	"sync"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.HealthProfile
}

// NewProfileRepository creates a new in-memory profile repository
func NewProfileRepository() ProfileRepository {
	return &profileRepository{
		profiles: make(map[string]*domain.HealthProfile),
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.HealthProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

// Save creates or replaces the profile of profile.UserID
func (r *profileRepository) Save(ctx context.Context, profile *domain.HealthProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *profileRepository) UpdateDoctorNotes(ctx context.Context, userID, notes string) (*domain.HealthProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	p.DoctorNotes = notes
	p.UpdatedAt = time.Now()

	out := *p
	return &out, nil
}
