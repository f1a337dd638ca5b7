package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prperemyshlev/healthtrack-smoke/internal/domain"
	"github.com/prperemyshlev/healthtrack-smoke/internal/dto"
	"github.com/prperemyshlev/healthtrack-smoke/internal/repository"
	"github.com/prperemyshlev/healthtrack-smoke/internal/utils"
	"github.com/prperemyshlev/healthtrack-smoke/pkg/observability"
)

// ErrInvalidCredentials is returned for an unknown identifier or a wrong password
var ErrInvalidCredentials = errors.New("invalid identifier or password")

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	metrics    *observability.StubMetrics
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	metrics *observability.StubMetrics,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		metrics:    metrics,
	}
}

// Login authenticates by email or username and issues an access token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginData, error) {
	user, err := s.findUser(ctx, req.Identifier)
	if err != nil {
		s.metrics.RecordLogin(ctx, false)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.metrics.RecordLogin(ctx, false)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.metrics.RecordLogin(ctx, true)

	return &dto.LoginData{
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		AccessToken: token,
		ExpiresIn:   s.jwtManager.GetAccessTokenExpiry(),
	}, nil
}

func (s *authService) findUser(ctx context.Context, identifier string) (*domain.User, error) {
	if utils.IsEmailIdentifier(identifier) {
		return s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(identifier))
	}
	return s.userRepo.GetByUsername(ctx, identifier)
}

// ValidateToken checks the signature and expiry of a token and that its user still exists
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, claims.UserID); err != nil {
		return nil, fmt.Errorf("token user: %w", err)
	}

	return claims, nil
}
