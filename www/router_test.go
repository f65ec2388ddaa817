package www

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marnewatch/engine/db"
	"marnewatch/engine/liveness"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	return &Router{Tracker: liveness.NewTracker()}
}

func TestProbeReportsMinutesSinceLastAttempt(t *testing.T) {
	tests := []struct {
		name       string
		minutesAgo int64
		wantStatus int
		wantBody   string
	}{
		{
			name:       "just polled",
			minutesAgo: 0,
			wantStatus: http.StatusOK,
			wantBody:   "0",
		},
		{
			name:       "at the threshold",
			minutesAgo: 5,
			wantStatus: http.StatusOK,
			wantBody:   "5",
		},
		{
			name:       "past the threshold",
			minutesAgo: 6,
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)
			before := liveness.EpochMinute(time.Now())
			router.Tracker.RecordAttempt(before - tt.minutesAgo)

			rec := httptest.NewRecorder()
			router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if liveness.EpochMinute(time.Now()) != before {
				t.Skip("minute boundary crossed mid-request")
			}
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestProbeBeforeFirstCycleIsUnhealthy(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProbeAnswersAnyPath(t *testing.T) {
	router := newTestRouter(t)
	router.Tracker.RecordAttempt(liveness.EpochMinute(time.Now()))

	for _, path := range []string{"/", "/healthz", "/some/deep/path"} {
		rec := httptest.NewRecorder()
		router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestProbeResponseHeaders(t *testing.T) {
	router := newTestRouter(t)
	router.Tracker.RecordAttempt(liveness.EpochMinute(time.Now()))

	rec := httptest.NewRecorder()
	router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

// TestGraph walks the handler through all three store states in order,
// because the connection is package state that cannot be torn back down.
func TestGraph(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "history store disabled")

	require.NoError(t, db.Connect("sqlite:"+filepath.Join(t.TempDir(), "history.db")))

	rec = httptest.NewRecorder()
	router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i, players := range []int{40, 44, 38} {
		_, err := db.CreateCycle(db.CycleSchema{
			StartTime:      time.Now().Add(time.Duration(i-3) * time.Hour),
			Success:        true,
			CurrentPlayers: players,
			MaxPlayers:     64,
			MapName:        "MP_Amiens",
			Mode:           "Conquest0",
		})
		require.NoError(t, err)
	}

	rec = httptest.NewRecorder()
	router.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}
