package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(ctx context.Context) error {
	return p.err
}

type fakeFeed struct {
	enabled bool
}

func (f *fakeFeed) Name() string    { return "demo" }
func (f *fakeFeed) IsEnabled() bool { return f.enabled }

func TestHandleHealth(t *testing.T) {
	s := NewServer(Config{ServiceName: "value-hunter", Version: "1.0.0"})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "value-hunter", resp.Service)
}

func TestHandleReadyNotReady(t *testing.T) {
	s := NewServer(Config{ServiceName: "value-hunter"})

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleReadyHealthy(t *testing.T) {
	s := NewServer(Config{
		ServiceName: "value-hunter",
		DB:          &fakePinger{},
		Feed:        &fakeFeed{enabled: true},
	})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["database"])
	assert.Equal(t, "ok", resp.Checks["feed_demo"])
}

func TestHandleReadyDatabaseDown(t *testing.T) {
	s := NewServer(Config{
		ServiceName: "value-hunter",
		DB:          &fakePinger{err: errors.New("connection refused")},
	})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleReadyDisabledFeedStillReady(t *testing.T) {
	s := NewServer(Config{
		ServiceName: "value-hunter",
		Feed:        &fakeFeed{enabled: false},
	})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "disabled", resp.Checks["feed_demo"])
}

func TestSetReady(t *testing.T) {
	s := NewServer(Config{ServiceName: "value-hunter"})

	assert.False(t, s.IsReady())
	s.SetReady(true)
	assert.True(t, s.IsReady())
}
