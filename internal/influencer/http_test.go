// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

func serveAs(handler http.Handler, claims *sec.AuthClaims, method, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_RegisterAndFetch registers a profile then reads it back.
*/
func TestHandler_RegisterAndFetch(t *testing.T) {
	service, _ := newTestService()
	routes := NewHandler(service).Routes()
	claims := &sec.AuthClaims{UserID: "inf-1", Role: string(sec.RoleInfluencer)}

	payload, err := json.Marshal(validInput())
	require.NoError(t, err)

	created := serveAs(routes, claims, http.MethodPost, string(payload))
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	assert.Contains(t, created.Body.String(), `"verificationStatus":"pending"`)

	fetched := serveAs(routes, claims, http.MethodGet, "")
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Contains(t, fetched.Body.String(), "minji.eats")
}

func TestHandler_Anonymous(t *testing.T) {
	service, _ := newTestService()

	recorder := serveAs(NewHandler(service).Routes(), nil, http.MethodPost, `{}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_AdvertiserForbidden(t *testing.T) {
	service, _ := newTestService()
	claims := &sec.AuthClaims{UserID: "adv-1", Role: string(sec.RoleAdvertiser)}

	payload, err := json.Marshal(validInput())
	require.NoError(t, err)

	recorder := serveAs(NewHandler(service).Routes(), claims, http.MethodPost, string(payload))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_AgeGateIsBadRequest(t *testing.T) {
	service, _ := newTestService()
	claims := &sec.AuthClaims{UserID: "inf-1", Role: string(sec.RoleInfluencer)}

	input := validInput()
	input.BirthDate = "2010-01-01"
	payload, err := json.Marshal(input)
	require.NoError(t, err)

	recorder := serveAs(NewHandler(service).Routes(), claims, http.MethodPost, string(payload))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "birthDate")
}
