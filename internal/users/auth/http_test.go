// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/platform/constants"
	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

/*
TestHandler_Signup returns 201 with the success envelope.
*/
func TestHandler_Signup(t *testing.T) {
	service, _, _ := newTestService()
	router := NewHandler(service, false).Routes()

	body := `{"email":"brand@acme.kr","password":"s3cret-pass","fullName":"Lee Jun","phoneNumber":"01098765432","role":"advertiser","termsVersion":"v1"}`
	request := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data SignupResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "brand@acme.kr", envelope.Data.Email)
	assert.Equal(t, sec.RoleAdvertiser, envelope.Data.Role)
	assert.False(t, envelope.Data.RequiresEmailVerification)
}

func TestHandler_Signup_InvalidJSON(t *testing.T) {
	service, _, _ := newTestService()
	router := NewHandler(service, false).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
}

/*
TestHandler_LoginSetsCookie stores the refresh token in an HttpOnly cookie.
*/
func TestHandler_LoginSetsCookie(t *testing.T) {
	service, _, _ := newTestService()
	service.hashPassword = sec.HashPassword
	router := NewHandler(service, false).Routes()

	_, err := service.Signup(t.Context(), validSignup())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"creator@example.com","password":"s3cret-pass"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.RefreshTokenCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, recorder.Body.String(), `"tokenType":"Bearer"`)
}

func TestHandler_Me_RequiresAuth(t *testing.T) {
	service, _, _ := newTestService()
	router := NewHandler(service, false).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	result, err := service.Signup(t.Context(), validSignup())
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: result.UserID, Role: "influencer"}))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
