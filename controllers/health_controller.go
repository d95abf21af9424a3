package controllers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthController reports service health. Redis is optional; losing it degrades the service.
type HealthController struct {
	db     *sql.DB
	redis  *redis.Client
	logger logrus.FieldLogger
}

// NewHealthController creates a health controller; redis may be nil
func NewHealthController(db *sql.DB, redis *redis.Client, logger logrus.FieldLogger) *HealthController {
	return &HealthController{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// DependencyStatus represents the health of a single dependency
type DependencyStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := c.Check(ctx)
	code := http.StatusOK
	if status.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, c.logger, code, status)
}

// Check pings every configured dependency
func (c *HealthController) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:       StatusHealthy,
		Service:      "content-audit",
		Dependencies: map[string]DependencyStatus{},
	}

	if c.db != nil {
		dep := DependencyStatus{Status: StatusHealthy}
		if err := c.db.PingContext(ctx); err != nil {
			dep = DependencyStatus{Status: StatusUnhealthy, Message: err.Error()}
			status.Status = StatusUnhealthy
		}
		status.Dependencies["database"] = dep
	}

	if c.redis != nil {
		dep := DependencyStatus{Status: StatusHealthy}
		if err := c.redis.Ping(ctx).Err(); err != nil {
			dep = DependencyStatus{Status: StatusUnhealthy, Message: err.Error()}
			if status.Status != StatusUnhealthy {
				status.Status = StatusDegraded
			}
		}
		status.Dependencies["redis"] = dep
	}

	return status
}
