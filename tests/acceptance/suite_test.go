package acceptance

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/healthtrack-smoke/internal/app"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/suite"
)

// Suite runs the smoke tester against a stub server on a random port
type Suite struct {
	suite.Suite
	Config  *config.Config
	BaseURL string
	cancel  context.CancelFunc
	done    chan error
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(Suite))
}

func (s *Suite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	cfg, err := config.LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
		"ENV":              "test",
		"STUB_BCRYPT_COST": "4",
		"SMOKE_TIMEOUT":    "5s",
	}))
	if err != nil {
		s.T().Fatalf("Failed to load configuration: %v", err)
	}

	infra, err := app.NewInfrastructure(ctx, *cfg)
	if err != nil {
		s.T().Fatalf("Failed to initialize infrastructure: %v", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		s.T().Fatalf("Failed to create listener: %v", err)
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.BaseURL = fmt.Sprintf("http://127.0.0.1:%d/api", addr.Port)
	cfg.Smoke.BaseURL = s.BaseURL
	s.Config = cfg

	application := app.NewApp(infra, cfg)

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() {
		s.done <- application.Serve(ctx, listener)
	}()
}

func (s *Suite) TearDownSuite() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	select {
	case err := <-s.done:
		s.NoError(err)
	case <-time.After(10 * time.Second):
		s.T().Error("stub server did not shut down")
	}
}

// smokeConfig returns a copy of the suite config the test may modify
func (s *Suite) smokeConfig() config.SmokeConfig {
	return s.Config.Smoke
}
