package acceptance

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/client"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/smoke"
	"go.uber.org/zap"
)

func (s *Suite) execute(cfg config.SmokeConfig) (int, string) {
	var out bytes.Buffer
	runner := smoke.NewRunner(client.New(cfg, zap.NewNop()), cfg, smoke.NewReporter(&out), zap.NewNop())
	code := runner.Execute(context.Background())
	return code, out.String()
}

func (s *Suite) TestHealthEndpoint() {
	resp, err := http.Get(strings.TrimSuffix(s.BaseURL, "/api") + "/health")
	s.Require().NoError(err, "Failed to make request")
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode, "Expected status 200")
}

func (s *Suite) TestSmoke_FullRun() {
	code, out := s.execute(s.smokeConfig())

	s.Equal(smoke.ExitOK, code)
	s.Contains(out, "Token obtained")
	s.Contains(out, "Status: 200")
	s.Contains(out, "Success! Data preview")
	s.Contains(out, `"doctorNotes": "Patient is in good health. Keep the current exercise frequency."`)
	s.NotContains(out, "Failed!")
	s.Contains(out, "Smoke test complete!")
}

func (s *Suite) TestSmoke_InvalidCredentials() {
	cfg := s.smokeConfig()
	cfg.Password = "wrong-password"

	code, out := s.execute(cfg)

	s.Equal(smoke.ExitLoginFailed, code)
	s.Contains(out, "Status: 401")
	s.Contains(out, "Login failed")
	s.NotContains(out, "2. Fetch health profile")
}

func (s *Suite) TestSmoke_UnreachableHost() {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api"
	srv.Close()

	cfg := s.smokeConfig()
	cfg.BaseURL = base

	code, out := s.execute(cfg)

	s.Equal(smoke.ExitOK, code)
	s.Contains(out, "Connection error: cannot connect to "+base)
}

func (s *Suite) TestSmoke_SlowService() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := s.smokeConfig()
	cfg.BaseURL = srv.URL + "/api"
	cfg.Timeout = config.Duration{Duration: 200 * time.Millisecond}

	start := time.Now()
	code, out := s.execute(cfg)

	s.Equal(smoke.ExitOK, code)
	s.Contains(out, "Request timed out")
	s.Less(time.Since(start), 2*time.Second)
}
