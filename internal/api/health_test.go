// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package api_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/api"
)

func probeReadiness(t *testing.T, deps api.HealthDependencies) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	_, readiness := api.NewHealthHandlers(deps, slog.New(slog.DiscardHandler))

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	return recorder, envelope.Data
}

/*
TestReadiness_AllHealthy verifies a 200 "ready" response when every dependency
check passes.
*/
func TestReadiness_AllHealthy(t *testing.T) {
	recorder, data := probeReadiness(t, api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return nil },
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ready", data["status"])
}

/*
TestReadiness_Degraded verifies a failing dependency yields a single 503
response with the degraded status in the body.
*/
func TestReadiness_Degraded(t *testing.T) {
	recorder, data := probeReadiness(t, api.HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return errors.New("connection refused") },
	})

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "degraded", data["status"])

	checks, ok := data["checks"].([]any)
	require.True(t, ok)
	assert.Len(t, checks, 2)
}

/*
TestLiveness verifies the liveness probe always answers 200.
*/
func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(api.HealthDependencies{}, slog.New(slog.DiscardHandler))

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
