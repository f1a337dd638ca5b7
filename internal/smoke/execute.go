package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/prperemyshlev/healthtrack-smoke/internal/client"
	"go.uber.org/zap"
)

// Exit codes of the smoke CLI
const (
	ExitOK          = 0
	ExitLoginFailed = 1
)

const title = "HealthTrack personalized health profile API smoke test"

// Execute runs the smoke sequence behind a single error boundary and returns
// the process exit code. Only a tokenless login yields a non-zero code;
// transport and unexpected errors are reported and the run ends normally.
func (r *Runner) Execute(ctx context.Context) (code int) {
	r.report.Banner(title)

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Smoke run panicked", zap.Any("panic", p))
			r.report.Diagnostic(fmt.Sprintf("Error: %v", p))
			code = ExitOK
		}
	}()

	err := r.Run(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrLoginFailed):
		r.logger.Warn("Login did not return a token", zap.Error(err))
		return ExitLoginFailed
	case errors.Is(err, client.ErrConnectionRefused):
		base := r.api.BaseURL()
		r.report.Diagnostic(
			fmt.Sprintf("Connection error: cannot connect to %s", base),
			fmt.Sprintf("Make sure the backend is running at %s", origin(base)),
		)
	case errors.Is(err, client.ErrTimeout):
		r.report.Diagnostic("Request timed out")
	default:
		r.report.Diagnostic(fmt.Sprintf("Error: %v", err))
	}

	r.logger.Debug("Smoke run aborted", zap.Error(err))
	return ExitOK
}

// origin strips the path from a base URL
func origin(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	return u.Scheme + "://" + u.Host
}
