package service

import (
	"context"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
	"github.com/prperemyshlev/healthtrack-smoke/internal/dto"
)

// AuthService defines methods for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginData, error)
	ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// ProfileService defines methods for personalized health profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.HealthProfile, error)
	GetStandards(ctx context.Context, userID string) (*domain.PersonalizedStandards, error)
	UpdateDoctorNotes(ctx context.Context, userID, notes string) (*domain.HealthProfile, error)
	GetPersonalizedAnalysis(ctx context.Context, userID string) (*PersonalizedAnalysis, error)
}
