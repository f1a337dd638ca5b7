package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
	"github.com/prperemyshlev/healthtrack-smoke/internal/repository"
	"github.com/prperemyshlev/healthtrack-smoke/internal/utils"
)

// SeedDemoData creates the demo user with a profile and a week of health records
func SeedDemoData(ctx context.Context, repos *repository.Repositories, seed config.SeedConfig, bcryptCost int, now time.Time) (*domain.User, error) {
	email := utils.SanitizeEmail(seed.Email)
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid seed email %q", seed.Email)
	}

	hash, err := utils.HashPassword(seed.Password, bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &domain.User{
		Username:     seed.Username,
		Email:        email,
		PasswordHash: hash,
	}

	ageGroup := domain.AgeGroupAdult
	if seed.Birthday != "" {
		birthday, err := time.Parse(time.DateOnly, seed.Birthday)
		if err != nil {
			return nil, fmt.Errorf("invalid seed birthday: %w", err)
		}
		user.Birthday = &birthday
		if age, ok := user.Age(now); ok {
			ageGroup = domain.AgeGroupFor(age)
		}
	}

	if err := repos.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create seed user: %w", err)
	}

	profile := &domain.HealthProfile{
		UserID:          user.ID,
		AgeGroup:        ageGroup,
		ActivityLevel:   domain.ActivityModeratelyActive,
		HealthCondition: "good",
	}
	if err := repos.Profile.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create seed profile: %w", err)
	}

	day := now.Truncate(24 * time.Hour)
	for i := 6; i >= 0; i-- {
		record := &domain.HealthRecord{
			UserID:     user.ID,
			WeightKg:   68 + float64(i%3)*0.4,
			HeightCm:   172,
			Steps:      7200 + i*450,
			HeartRate:  68 + i%4,
			SleepHours: 7 + float64(i%3)*0.5,
			RecordedAt: day.AddDate(0, 0, -i),
		}
		if err := repos.Record.Add(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create seed record: %w", err)
		}
	}

	return user, nil
}
