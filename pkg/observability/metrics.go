package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PrometheusHandler returns a Gin handler for Prometheus metrics
func PrometheusHandler(handler http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if handler == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "metrics handler not initialized",
			})
			return
		}
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// StubMetrics holds the counters recorded by the HealthTrack stub server
type StubMetrics struct {
	logins             metric.Int64Counter
	doctorNotesUpdates metric.Int64Counter
}

// NewStubMetrics registers the stub counters on the global meter provider
func NewStubMetrics() (*StubMetrics, error) {
	meter := otel.Meter("healthtrack-stub")

	logins, err := meter.Int64Counter("auth_logins_total",
		metric.WithDescription("Login attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create login counter: %w", err)
	}

	notes, err := meter.Int64Counter("doctor_notes_updates_total",
		metric.WithDescription("Doctor notes updates"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor notes counter: %w", err)
	}

	return &StubMetrics{
		logins:             logins,
		doctorNotesUpdates: notes,
	}, nil
}

func (m *StubMetrics) RecordLogin(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *StubMetrics) RecordDoctorNotesUpdate(ctx context.Context) {
	if m == nil {
		return
	}
	m.doctorNotesUpdates.Add(ctx, 1)
}
