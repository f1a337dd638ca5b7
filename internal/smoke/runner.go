package smoke

import (
	"context"
	"errors"
	"fmt"

	"github.com/prperemyshlev/healthtrack-smoke/internal/client"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/utils"
	"go.uber.org/zap"
)

// ErrLoginFailed is returned when the login response carries no access token
var ErrLoginFailed = errors.New("login failed")

// ErrUnexpectedBody is returned when a failed response is not a JSON object
var ErrUnexpectedBody = errors.New("error response is not a JSON object")

// API is the subset of the HealthTrack API exercised by a smoke run
type API interface {
	BaseURL() string
	Login(ctx context.Context, identifier, password string) (*client.Response, error)
	Profile(ctx context.Context, token string) (*client.Response, error)
	Standards(ctx context.Context, token string) (*client.Response, error)
	UpdateDoctorNotes(ctx context.Context, token, notes string) (*client.Response, error)
	PersonalizedAnalysis(ctx context.Context, token string) (*client.Response, error)
}

// Runner drives the fixed login, profile, standards, doctor notes, analysis sequence
type Runner struct {
	api    API
	cfg    config.SmokeConfig
	report *Reporter
	logger *zap.Logger
}

func NewRunner(api API, cfg config.SmokeConfig, report *Reporter, logger *zap.Logger) *Runner {
	return &Runner{
		api:    api,
		cfg:    cfg,
		report: report,
		logger: logger,
	}
}

// Run performs the five steps in order. It stops at the first transport,
// decoding or unexpected body error and returns it unprinted; a login without token prints its
// own failure and returns ErrLoginFailed.
func (r *Runner) Run(ctx context.Context) error {
	token, err := r.login(ctx)
	if err != nil {
		return err
	}

	r.report.Step(2, "Fetch health profile (GET "+client.ProfilePath+")")
	resp, err := r.api.Profile(ctx, token)
	if err != nil {
		return err
	}
	r.report.Status(resp.StatusCode)
	r.report.BodyPreview(resp.Raw, r.cfg.ProfilePreview)

	r.report.Step(3, "Fetch personalized standards (GET "+client.StandardsPath+")")
	resp, err = r.api.Standards(ctx, token)
	if err != nil {
		return err
	}
	if err := r.reportOutcome(resp); err != nil {
		return err
	}

	r.report.Step(4, "Update doctor notes (PUT "+client.DoctorNotesPath+")")
	resp, err = r.api.UpdateDoctorNotes(ctx, token, r.cfg.DoctorNotes)
	if err != nil {
		return err
	}
	r.report.Status(resp.StatusCode)
	r.report.Body(resp.Raw)

	r.report.Step(5, "Fetch personalized analysis (GET "+client.PersonalizedAnalysisPath+")")
	resp, err = r.api.PersonalizedAnalysis(ctx, token)
	if err != nil {
		return err
	}
	if err := r.reportOutcome(resp); err != nil {
		return err
	}

	r.report.Footer("Smoke test complete!")
	return nil
}

func (r *Runner) login(ctx context.Context) (string, error) {
	r.report.Step(1, "Log in to obtain token")

	resp, err := r.api.Login(ctx, r.cfg.Identifier, r.cfg.Password)
	if err != nil {
		return "", err
	}
	r.report.Status(resp.StatusCode)
	r.report.Body(resp.Raw)

	token, ok := extractToken(resp)
	if !ok {
		r.report.Fail("Login failed")
		return "", fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}
	r.report.OK("Token obtained")

	if claims, err := utils.DecodeUnverified(token); err == nil {
		r.logger.Debug("Session token",
			zap.String("user_id", claims.UserID),
			zap.String("issuer", claims.Issuer),
			zap.Time("expires_at", claims.ExpiresAt()),
		)
	}

	return token, nil
}

// reportOutcome prints a preview of a 2xx body or the error field of any
// other. A failed response must be a JSON object to carry that field.
func (r *Runner) reportOutcome(resp *client.Response) error {
	r.report.Status(resp.StatusCode)
	if resp.IsSuccess() {
		r.report.SuccessPreview(resp.Raw, r.cfg.ReportPreview)
		return nil
	}
	if !resp.IsObject() {
		return fmt.Errorf("%w: status %d", ErrUnexpectedBody, resp.StatusCode)
	}
	r.report.FailureField(resp.Field("error"))
	return nil
}

// extractToken requires a truthy success flag and a non-empty data.accessToken string
func extractToken(resp *client.Response) (string, bool) {
	success, _ := resp.Field("success")
	if !truthy(success) {
		return "", false
	}

	v, _ := resp.Path("data", "accessToken")
	token, ok := v.(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// truthy follows JSON intuition: false, null, 0, "" and empty containers are false
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		return err == nil && f != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
