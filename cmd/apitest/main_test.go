package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/ifc-calendar/internal/api"
	"github.com/zapponejosh/ifc-calendar/internal/calendar"
	"github.com/zapponejosh/ifc-calendar/internal/config"
	"github.com/zapponejosh/ifc-calendar/internal/database"
	"github.com/zapponejosh/ifc-calendar/internal/logger"
)

func TestRunnerAgainstServer(t *testing.T) {
	log := logger.Discard()

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Migrate(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{Env: config.EnvDevelopment, MaxICSYears: config.DefaultMaxICSYears}
	clock := calendar.FixedClock(time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC))
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log, clock), cfg, log))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	failures := NewTestRunner(srv.URL, &out, true).Run()

	assert.Zero(t, failures, out.String())
	assert.Contains(t, out.String(), "All tests passed")
}

func TestRunnerReportsFailures(t *testing.T) {
	srv := httptest.NewServer(nil)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	failures := NewTestRunner(srv.URL, &out, false).Run()

	assert.Positive(t, failures)
	assert.Contains(t, out.String(), "Failures:")
}
