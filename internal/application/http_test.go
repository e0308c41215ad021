// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

func asUser(request *http.Request, userID string, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: userID, Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func serve(router http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_ApplyAndReview drives the scenario over HTTP.
*/
func TestHandler_ApplyAndReview(t *testing.T) {
	f := newFixture()
	campaignID := f.addCampaign(1, nil)
	router := NewHandler(f.service).Routes()

	body, err := json.Marshal(applyInput(campaignID))
	require.NoError(t, err)

	// Advertisers cannot apply.
	recorder := serve(router, asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))), advertiserA, sec.RoleAdvertiser))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = serve(router, asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))), influencerU, sec.RoleInfluencer))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data CreateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, StatusPending, created.Data.Status)

	review := `{"status":"approved","feedback":"good fit"}`
	path := "/" + created.Data.ApplicationID + "/status"

	recorder = serve(router, asUser(httptest.NewRequest(http.MethodPut, path, strings.NewReader(review)), advertiserB, sec.RoleAdvertiser))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = serve(router, asUser(httptest.NewRequest(http.MethodPut, path, strings.NewReader(review)), advertiserA, sec.RoleAdvertiser))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"feedback":"good fit"`)

	recorder = serve(router, asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))), influencerU, sec.RoleInfluencer))
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_CampaignRoutes(t *testing.T) {
	f := newFixture()
	campaignID := f.addCampaign(5, nil)
	f.apply(t, influencerU, campaignID)

	router := chi.NewRouter()
	router.Mount("/campaigns/{campaignId}/applications", NewHandler(f.service).CampaignRoutes())

	recorder := serve(router, asUser(httptest.NewRequest(http.MethodGet, "/campaigns/"+campaignID+"/applications?status=pending", nil), advertiserA, sec.RoleAdvertiser))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"applicantEmail":"inf-u@example.com"`)

	recorder = serve(router, asUser(httptest.NewRequest(http.MethodGet, "/campaigns/bad-id/applications", nil), advertiserA, sec.RoleAdvertiser))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
