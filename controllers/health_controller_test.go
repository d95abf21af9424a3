package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController(t *testing.T) {
	tests := []struct {
		name      string
		dbDown    bool
		redisDown bool
		status    string
		code      int
	}{
		{"all healthy", false, false, StatusHealthy, http.StatusOK},
		{"redis down", false, true, StatusDegraded, http.StatusOK},
		{"database down", true, false, StatusUnhealthy, http.StatusServiceUnavailable},
		{"everything down", true, true, StatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()
			ping := mock.ExpectPing()
			if tt.dbDown {
				ping.WillReturnError(errors.New("connection refused"))
			}

			logger, _ := test.NewNullLogger()
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
			defer client.Close()
			if tt.redisDown {
				mr.Close()
			}

			rec := httptest.NewRecorder()
			NewHealthController(db, client, logger).Index(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, rec.Code)
			var status HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
			assert.Equal(t, tt.status, status.Status)
			assert.Equal(t, "content-audit", status.Service)
			assert.Len(t, status.Dependencies, 2)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthController_WithoutRedis(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()
	logger, _ := test.NewNullLogger()

	status := NewHealthController(db, nil, logger).Check(t.Context())

	assert.Equal(t, StatusHealthy, status.Status)
	assert.Contains(t, status.Dependencies, "database")
	assert.NotContains(t, status.Dependencies, "redis")
}
