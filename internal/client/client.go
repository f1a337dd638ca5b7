package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/dto"
	"go.uber.org/zap"
)

// HealthTrack API paths, relative to the base URL
const (
	LoginPath                = "/auth/login"
	ProfilePath              = "/health-profile"
	StandardsPath            = "/health-profile/standards"
	DoctorNotesPath          = "/health-profile/doctor-notes"
	PersonalizedAnalysisPath = "/health-profile/analysis/personalized"
)

// Client talks to the HealthTrack health-profile API
type Client struct {
	cfg    config.SmokeConfig
	http   *http.Client
	logger *zap.Logger
}

// New creates a client for cfg.BaseURL with cfg.Timeout applied to every call
func New(cfg config.SmokeConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout.Duration,
		},
		logger: logger,
	}
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	return c.cfg.APIBase()
}

// Login posts the credentials to the login endpoint
func (c *Client) Login(ctx context.Context, identifier, password string) (*Response, error) {
	return c.do(ctx, http.MethodPost, LoginPath, "", dto.LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
}

// Profile fetches the health profile
func (c *Client) Profile(ctx context.Context, token string) (*Response, error) {
	return c.authenticated(ctx, http.MethodGet, ProfilePath, token, nil)
}

// Standards fetches the personalized health standards
func (c *Client) Standards(ctx context.Context, token string) (*Response, error) {
	return c.authenticated(ctx, http.MethodGet, StandardsPath, token, nil)
}

// UpdateDoctorNotes replaces the doctor notes of the profile
func (c *Client) UpdateDoctorNotes(ctx context.Context, token, notes string) (*Response, error) {
	return c.authenticated(ctx, http.MethodPut, DoctorNotesPath, token, dto.DoctorNotesRequest{
		DoctorNotes: &notes,
	})
}

// PersonalizedAnalysis fetches the personalized health analysis
func (c *Client) PersonalizedAnalysis(ctx context.Context, token string) (*Response, error) {
	return c.authenticated(ctx, http.MethodGet, PersonalizedAnalysisPath, token, nil)
}

func (c *Client) authenticated(ctx context.Context, method, path, token string, payload any) (*Response, error) {
	if token == "" {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrMissingToken)
	}
	return c.do(ctx, method, path, token, payload)
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout.Duration)
	defer cancel()

	var connected atomic.Bool
	ctx = httptrace.WithClientTrace(ctx, &httptrace.ClientTrace{
		GotConn: func(httptrace.GotConnInfo) { connected.Store(true) },
	})

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return nil, classify(err, connected.Load())
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	)

	return decodeResponse(resp)
}
