// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/advertiser"
	"github.com/taibuivan/campaignhub/internal/api"
	"github.com/taibuivan/campaignhub/internal/application"
	"github.com/taibuivan/campaignhub/internal/campaign"
	"github.com/taibuivan/campaignhub/internal/influencer"
	"github.com/taibuivan/campaignhub/internal/platform/config"
	"github.com/taibuivan/campaignhub/internal/platform/metrics"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
	"github.com/taibuivan/campaignhub/internal/users/auth"
)

// roleVerifier accepts a bare role name as the bearer token.
type roleVerifier struct{}

func (roleVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if !sec.UserRole(token).Valid() {
		return nil, errors.New("unknown token")
	}
	return &sec.AuthClaims{UserID: "01960000-0000-7000-8000-000000000001", Role: token}, nil
}

// newTestServer wires every handler. Repositories are nil, so only requests
// rejected before reaching storage may be sent.
func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewMetrics("campaignhub")
	cfg := &config.Config{
		ServerPort:     "0",
		Environment:    "development",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        auth.NewHandler(auth.NewService(nil, nil, nil, m), false),
		Advertiser:  advertiser.NewHandler(advertiser.NewService(nil)),
		Influencer:  influencer.NewHandler(influencer.NewService(nil)),
		Campaign:    campaign.NewHandler(campaign.NewService(nil, m)),
		Application: application.NewHandler(application.NewService(nil, nil, m)),
	}

	context, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(context, cfg, logger, roleVerifier{}, m, handlers)
	return server.Handler()
}

func serve(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	recorder := serve(handler, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
	assert.Contains(t, recorder.Body.String(), "campaignhub")
}

/*
TestReady_Degraded reports 503 and names the failing dependency.
*/
func TestReady_Degraded(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		Database: func(context.Context) error { return nil },
		Cache:    func(context.Context) error { return errors.New("redis: connection refused") },
	})

	recorder := serve(handler, http.MethodGet, "/ready", "")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}

func TestReady_OK(t *testing.T) {
	ok := func(context.Context) error { return nil }
	handler := newTestServer(t, api.HealthDependencies{Database: ok, Cache: ok})

	recorder := serve(handler, http.MethodGet, "/ready", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	serve(handler, http.MethodGet, "/health", "")
	recorder := serve(handler, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "campaignhub_http_requests_total")
}

/*
TestRouting checks each mount point resolves to the expected handler set.
Every case is rejected before storage is touched.
*/
func TestRouting(t *testing.T) {
	const campaignID = "01960000-0000-7000-8000-0000000000aa"

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{"advertiser_profile_anonymous", http.MethodGet, "/api/v1/advertiser/profile", "", http.StatusUnauthorized},
		{"advertiser_profile_wrong_role", http.MethodGet, "/api/v1/advertiser/profile", "influencer", http.StatusForbidden},
		{"influencer_profile_anonymous", http.MethodPost, "/api/v1/influencer/profile", "", http.StatusUnauthorized},
		{"owner_campaigns_wrong_role", http.MethodGet, "/api/v1/advertiser/campaigns", "influencer", http.StatusForbidden},
		{"public_list_bad_limit", http.MethodGet, "/api/v1/campaigns?limit=0", "", http.StatusBadRequest},
		{"public_list_page_overflow", http.MethodGet, "/api/v1/campaigns?page=9223372036854775807&limit=50", "", http.StatusBadRequest},
		{"public_detail_bad_id", http.MethodGet, "/api/v1/campaigns/not-a-uuid", "", http.StatusBadRequest},
		{"create_campaign_wrong_role", http.MethodPost, "/api/v1/campaigns", "influencer", http.StatusForbidden},
		{"campaign_applications_wrong_role", http.MethodGet, "/api/v1/campaigns/" + campaignID + "/applications", "influencer", http.StatusForbidden},
		{"apply_wrong_role", http.MethodPost, "/api/v1/applications", "advertiser", http.StatusForbidden},
		{"review_wrong_role", http.MethodPut, "/api/v1/applications/" + campaignID + "/status", "influencer", http.StatusForbidden},
		{"me_anonymous", http.MethodGet, "/api/v1/auth/me", "", http.StatusUnauthorized},
		{"invalid_token", http.MethodGet, "/api/v1/campaigns", "forged", http.StatusUnauthorized},
		{"unknown_route", http.MethodGet, "/api/v1/nowhere", "", http.StatusNotFound},
	}

	handler := newTestServer(t, api.HealthDependencies{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(handler, tt.method, tt.target, tt.token)
			assert.Equal(t, tt.want, recorder.Code, recorder.Body.String())
		})
	}
}
