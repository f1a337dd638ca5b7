package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Smoke SmokeConfig `env:",prefix=SMOKE_"`
	Stub  StubConfig  `env:",prefix=STUB_"`
	Env   string      `env:"ENV,default=development"`
}

// SmokeConfig drives the smoke run against a HealthTrack API.
type SmokeConfig struct {
	BaseURL        string   `env:"BASE_URL,default=http://localhost:3000/api"`
	Identifier     string   `env:"IDENTIFIER,default=test@example.com"`
	Password       string   `env:"PASSWORD,default=Password123!"`
	Timeout        Duration `env:"TIMEOUT,default=5s"`
	DoctorNotes    string   `env:"DOCTOR_NOTES,default=Patient is in good health. Keep the current exercise frequency."`
	ProfilePreview int      `env:"PROFILE_PREVIEW,default=200"`
	ReportPreview  int      `env:"REPORT_PREVIEW,default=300"`
}

// StubConfig configures the in-memory HealthTrack stub server.
type StubConfig struct {
	Host              string     `env:"HOST,default=0.0.0.0"`
	Port              string     `env:"PORT,default=3000"`
	ReadTimeout       Duration   `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout      Duration   `env:"WRITE_TIMEOUT,default=15s"`
	JWTSecret         string     `env:"JWT_SECRET,default=healthtrack-stub-development-secret-key"`
	AccessTokenExpiry Duration   `env:"ACCESS_TOKEN_EXPIRY,default=2h"`
	BCryptCost        int        `env:"BCRYPT_COST,default=10"`
	Seed              SeedConfig `env:",prefix=SEED_"`
}

// SeedConfig describes the demo account the stub server starts with.
type SeedConfig struct {
	Username string `env:"USERNAME,default=testuser"`
	Email    string `env:"EMAIL,default=test@example.com"`
	Password string `env:"PASSWORD,default=Password123!"`
	Birthday string `env:"BIRTHDAY,default=1990-05-20"`
}

// Address returns the listen address of the stub server
func (s StubConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// APIBase returns the base URL without trailing slashes
func (s SmokeConfig) APIBase() string {
	return strings.TrimRight(s.BaseURL, "/")
}

// Endpoint joins path onto the API base URL.
func (s SmokeConfig) Endpoint(path string) string {
	return s.APIBase() + path
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Smoke.BaseURL)
	if err != nil {
		return fmt.Errorf("SMOKE_BASE_URL is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("SMOKE_BASE_URL must be an absolute http(s) URL, got %q", c.Smoke.BaseURL)
	}

	if c.Smoke.Timeout.Duration <= 0 {
		return fmt.Errorf("SMOKE_TIMEOUT must be positive")
	}

	if c.Smoke.ProfilePreview <= 0 || c.Smoke.ReportPreview <= 0 {
		return fmt.Errorf("preview lengths must be positive")
	}

	if len(c.Stub.JWTSecret) < 32 {
		return fmt.Errorf("STUB_JWT_SECRET must be at least 32 characters long")
	}

	return nil
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom loads configuration using the given lookuper
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var config Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &config,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
