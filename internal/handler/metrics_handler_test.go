package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edugest/edugest-api/internal/service"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newHealthRouter(db pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMetricsHandler(service.NewMetricsService(), db)
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", h.Prometheus)
	return r
}

func TestMetricsHandlerHealthAndReadiness(t *testing.T) {
	r := newHealthRouter(pingerFunc(func(context.Context) error { return nil }))

	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/ready", "").Code)

	rec := performRequest(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMetricsHandlerReadyFailsWhenDatabaseDown(t *testing.T) {
	r := newHealthRouter(pingerFunc(func(context.Context) error { return errors.New("connection refused") }))

	rec := performRequest(r, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
