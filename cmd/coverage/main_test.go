package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/ifc-calendar/internal/api"
	"github.com/zapponejosh/ifc-calendar/internal/config"
	"github.com/zapponejosh/ifc-calendar/internal/database"
	"github.com/zapponejosh/ifc-calendar/internal/logger"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Discard()

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Migrate(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{Env: config.EnvDevelopment, MaxICSYears: config.DefaultMaxICSYears}
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log, nil), cfg, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoundTripCoverage(t *testing.T) {
	srv := newServer(t)

	var out bytes.Buffer
	results := testAllDates(srv.Client(), srv.URL, 2023, 2024, &out, false)
	analysis := analyzeResults(results)

	assert.Equal(t, 365+366, analysis.TotalDays)
	assert.Zero(t, analysis.TotalFailed, analysis.AllFailures)

	assert.Equal(t, 1, analysis.ByYear[2023].SpecialDays)
	assert.Equal(t, 2, analysis.ByYear[2024].SpecialDays)
	assert.Equal(t, 2*28, analysis.ByPeriod["Sol"].TotalDays)
	assert.Equal(t, 1, analysis.ByPeriod["Leap Day"].TotalDays)

	printSummary(&out, analysis)
	assert.Contains(t, out.String(), "No failures!")
}

func TestDateFailsWhenServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	r := testDate(srv.Client(), srv.URL, "2024-01-01")
	assert.False(t, r.Success)
	assert.NotEmpty(t, r.Error)

	analysis := analyzeResults([]TestResult{r})
	assert.Equal(t, 1, analysis.TotalFailed)
	assert.Equal(t, 1, analysis.ByPeriod["(conversion failed)"].FailedDays)
}
