package repository

import (
	"context"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// ProfileRepository defines methods for health profile data access
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.HealthProfile, error)
	Save(ctx context.Context, profile *domain.HealthProfile) error
	UpdateDoctorNotes(ctx context.Context, userID, notes string) (*domain.HealthProfile, error)
}

// RecordRepository defines methods for health record data access
type RecordRepository interface {
	Add(ctx context.Context, record *domain.HealthRecord) error
	Latest(ctx context.Context, userID string) (*domain.HealthRecord, error)
}
