package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/handler"
	"github.com/prperemyshlev/healthtrack-smoke/internal/service"
	"github.com/prperemyshlev/healthtrack-smoke/internal/utils"
	"github.com/prperemyshlev/healthtrack-smoke/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// App is the HealthTrack stub server
type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := infra.Repositories()

	jwtManager := utils.NewJWTManager(cfg.Stub.JWTSecret, cfg.Stub.AccessTokenExpiry.Duration)

	authService := service.NewAuthService(repos.User, jwtManager, infra.Metrics())
	profileService := service.NewProfileService(repos.Profile, repos.Record, infra.Metrics())
	healthChecker := NewHealthChecker(infra)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("healthtrack-stub"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))

	setupRoutes(router,
		handler.NewAuthHandler(authService),
		handler.NewProfileHandler(profileService),
		authService,
		healthChecker,
		infra.MetricsHandler(),
	)

	srv := &http.Server{
		Addr:         cfg.Stub.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Stub.ReadTimeout.Duration,
		WriteTimeout: cfg.Stub.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	authService service.AuthService,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		profile := api.Group("/health-profile", handler.AuthMiddleware(authService))
		{
			profile.GET("", profileHandler.GetProfile)
			profile.GET("/standards", profileHandler.GetStandards)
			profile.PUT("/doctor-notes", profileHandler.UpdateDoctorNotes)
			profile.GET("/analysis/personalized", profileHandler.GetPersonalizedAnalysis)
		}
	}
}

// Run serves on the configured address until ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		return err
	}
	return a.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled, then shuts down
func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Stub server starting",
			zap.String("addr", listener.Addr().String()),
		)

		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Stub server stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		return errors.Join(serverErr, err)
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Stub server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	return nil
}
