package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
	"github.com/prperemyshlev/healthtrack-smoke/internal/repository"
	"github.com/prperemyshlev/healthtrack-smoke/pkg/observability"
)

// Profile service errors
var (
	ErrProfileNotFound = errors.New("health profile not created yet")
	ErrNoHealthRecords = errors.New("no health records found")
)

type profileService struct {
	profileRepo repository.ProfileRepository
	recordRepo  repository.RecordRepository
	metrics     *observability.StubMetrics
}

// NewProfileService creates a new health profile service
func NewProfileService(
	profileRepo repository.ProfileRepository,
	recordRepo repository.RecordRepository,
	metrics *observability.StubMetrics,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		recordRepo:  recordRepo,
		metrics:     metrics,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.HealthProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetStandards(ctx context.Context, userID string) (*domain.PersonalizedStandards, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	standards := domain.StandardsFor(profile)
	return &standards, nil
}

func (s *profileService) UpdateDoctorNotes(ctx context.Context, userID, notes string) (*domain.HealthProfile, error) {
	profile, err := s.profileRepo.UpdateDoctorNotes(ctx, userID, notes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update doctor notes: %w", err)
	}

	s.metrics.RecordDoctorNotesUpdate(ctx)

	return profile, nil
}

func (s *profileService) GetPersonalizedAnalysis(ctx context.Context, userID string) (*PersonalizedAnalysis, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := s.recordRepo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoHealthRecords
		}
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}

	return Analyze(profile, record), nil
}
