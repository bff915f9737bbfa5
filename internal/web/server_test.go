package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfzone/internal/booking"
	"turfzone/internal/metrics"
	"turfzone/internal/session"
	"turfzone/internal/turf"
	"turfzone/pkg/mocks"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func newTestServer(t *testing.T, repo turf.Repository, loggedIn bool) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewMetrics("Football", "Cricket")
	s := NewServer(Config{
		Lookup:     turf.NewService(repo, turf.WithLogger(logger), turf.WithObserver(m)),
		Session:    session.New(loggedIn),
		Generator:  booking.NewGenerator(fixedSource(4321)),
		Metrics:    m,
		Categories: []string{"Football", "Cricket"},
		Logger:     logger,
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, m
}

func footballRepo() *mocks.StaticTurfRepository {
	return &mocks.StaticTurfRepository{Turfs: []turf.Turf{
		{ID: 1, Name: "Star Turf Club", Address: "12 MG Road", PricePerHour: decimal.NewFromInt(1200), OperatingHours: "06:00 - 23:00", Category: "Football"},
		{ID: 2, Name: "Ground Zero Arena", Address: "7 Ring Road", PricePerHour: decimal.RequireFromString("950.50"), OperatingHours: "05:00 - 22:00", Category: "Football"},
	}}
}

func getJSON(t *testing.T, url string, v interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func postBooking(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url+"/api/bookings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t, footballRepo(), true)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestCategories(t *testing.T) {
	ts, _ := newTestServer(t, footballRepo(), true)

	var got map[string][]string
	status := getJSON(t, ts.URL+"/api/categories", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Football", "Cricket"}, got["categories"])
}

func TestTurfs(t *testing.T) {
	ts, m := newTestServer(t, footballRepo(), true)

	t.Run("default category", func(t *testing.T) {
		var got turfsResponse
		status := getJSON(t, ts.URL+"/api/turfs", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Football", got.Category)
		require.Len(t, got.Turfs, 2)
		assert.Equal(t, "Star Turf Club", got.Turfs[0].Name)
		assert.True(t, got.Turfs[1].PricePerHour.Equal(decimal.RequireFromString("950.50")))
		assert.Empty(t, got.Error)
	})

	t.Run("empty category", func(t *testing.T) {
		var got turfsResponse
		status := getJSON(t, ts.URL+"/api/turfs?category=Cricket", &got)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Cricket", got.Category)
		assert.NotNil(t, got.Turfs)
		assert.Empty(t, got.Turfs)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("Football", turf.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("Cricket", turf.OutcomeEmpty)))
}

func TestTurfs_StoreFailureIsSoft(t *testing.T) {
	repo := &mocks.StaticTurfRepository{Err: errors.New("connection refused")}
	ts, m := newTestServer(t, repo, true)

	var got turfsResponse
	status := getJSON(t, ts.URL+"/api/turfs?category=Football", &got)

	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, got.Turfs)
	assert.Equal(t, "Could not load Football turfs.", got.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NoticesTotal.WithLabelValues("lookup-failed")))
}

func TestBooking(t *testing.T) {
	tests := []struct {
		name       string
		loggedIn   bool
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "confirmed",
			loggedIn:   true,
			body:       `{"turf_name":"Star Turf Club","date":"2025-10-27","time_slot":"11:00 - 12:00 (11 AM)"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"confirmation_id":"#5321"`,
		},
		{
			name:       "logged out",
			loggedIn:   false,
			body:       `{"turf_name":"Star Turf Club","date":"2025-10-27","time_slot":"x"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "please log in",
		},
		{
			name:       "missing date",
			loggedIn:   true,
			body:       `{"turf_name":"Star Turf Club","date":" ","time_slot":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "missing date",
		},
		{
			name:       "malformed body",
			loggedIn:   true,
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newTestServer(t, footballRepo(), tt.loggedIn)

			resp, body := postBooking(t, ts.URL, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestBooking_ReportsPlaceholderSlot(t *testing.T) {
	ts, m := newTestServer(t, footballRepo(), true)

	resp, body := postBooking(t, ts.URL, `{"turf_name":"Star Turf Club","date":"2025-10-27","time_slot":"12:00 - 13:00 (12 PM)"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var conf booking.Confirmation
	require.NoError(t, json.Unmarshal(body, &conf))
	assert.Equal(t, booking.PlaceholderTimeSlot, conf.TimeSlot)
	assert.Equal(t, booking.PlaceholderUserID, conf.UserID)
	assert.Equal(t, "2025-10-27 @ 10:00 - 11:00", conf.When())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsConfirmed))
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, footballRepo(), true)

	first, err := http.Get(ts.URL + "/api/turfs")
	require.NoError(t, err)
	first.Body.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "turfzone_bookings_confirmed_total 0")
	assert.Contains(t, string(body), "turfzone_lookups_total")
}

func TestMetrics_BoundedLabels(t *testing.T) {
	ts, m := newTestServer(t, footballRepo(), true)

	for i := 0; i < 50; i++ {
		var got turfsResponse
		getJSON(t, fmt.Sprintf("%s/api/turfs?category=junk-%d", ts.URL, i), &got)

		resp, err := http.Get(fmt.Sprintf("%s/junk/%d", ts.URL, i))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.LookupsTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("other", turf.OutcomeEmpty)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestsTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/turfs", http.StatusText(http.StatusOK))))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", http.StatusText(http.StatusNotFound))))
}

func TestCORS(t *testing.T) {
	ts, _ := newTestServer(t, footballRepo(), true)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/bookings", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	s := NewServer(Config{Lookup: turf.NewService(footballRepo())})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	assert.NoError(t, <-done)
}
