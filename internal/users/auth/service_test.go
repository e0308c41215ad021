// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

func newTestService() (*Service, *memoryAccounts, *memorySessions) {
	accounts := newMemoryAccounts()
	sessions := newMemorySessions()
	service := NewService(accounts, sessions, stubTokens{}, nil)
	service.hashPassword = cheapHash
	return service, accounts, sessions
}

func validSignup() SignupInput {
	return SignupInput{
		Email:        "Creator@Example.com ",
		Password:     "s3cret-pass",
		FullName:     "Kim Minji",
		PhoneNumber:  "01012345678",
		Role:         "influencer",
		TermsVersion: "2024-01",
	}
}

/*
TestSignup_Success writes exactly one account, one profile and one terms row.
*/
func TestSignup_Success(t *testing.T) {
	service, accounts, _ := newTestService()

	result, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "creator@example.com", result.Email)
	assert.Equal(t, sec.RoleInfluencer, result.Role)
	assert.False(t, result.RequiresEmailVerification)

	assert.Len(t, accounts.accounts, 1)
	assert.Len(t, accounts.profiles, 1)
	require.Len(t, accounts.terms, 1)
	assert.Equal(t, result.UserID, accounts.profiles[result.UserID].UserID)
	assert.Equal(t, "2024-01", accounts.terms[0].TermsVersion)
	assert.True(t, accounts.accounts[result.UserID].IsVerified)
}

/*
TestSignup_Validation rejects every malformed field before touching storage.
*/
func TestSignup_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupInput)
		field  string
	}{
		{"bad_email", func(in *SignupInput) { in.Email = "not-an-email" }, FieldEmail},
		{"short_password", func(in *SignupInput) { in.Password = "1234567" }, FieldPassword},
		{"password_over_72_bytes", func(in *SignupInput) { in.Password = strings.Repeat("a", 80) }, FieldPassword},
		{"password_multibyte_over_72_bytes", func(in *SignupInput) { in.Password = strings.Repeat("비", 25) }, FieldPassword},
		{"short_name", func(in *SignupInput) { in.FullName = "K" }, FieldFullName},
		{"phone_with_dashes", func(in *SignupInput) { in.PhoneNumber = "010-1234-5678" }, FieldPhoneNumber},
		{"phone_landline", func(in *SignupInput) { in.PhoneNumber = "0212345678" }, FieldPhoneNumber},
		{"unknown_role", func(in *SignupInput) { in.Role = "admin" }, FieldRole},
		{"missing_terms", func(in *SignupInput) { in.TermsVersion = " " }, FieldTermsVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accounts, _ := newTestService()
			input := validSignup()
			tt.mutate(&input)

			_, err := service.Signup(context.Background(), input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			require.Len(t, appError.Details, 1)
			assert.Equal(t, tt.field, appError.Details[0].Field)
			assert.Empty(t, accounts.accounts)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), validSignup())
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestSignup_MidTransactionFailure leaves zero rows behind.
*/
func TestSignup_MidTransactionFailure(t *testing.T) {
	service, accounts, _ := newTestService()
	accounts.failTermsInsert = true

	_, err := service.Signup(context.Background(), validSignup())
	assert.True(t, apperr.HasCode(err, apperr.CodePersistence))

	assert.Empty(t, accounts.accounts)
	assert.Empty(t, accounts.profiles)
	assert.Empty(t, accounts.terms)
}

func TestSignup_HashFailure(t *testing.T) {
	service, accounts, _ := newTestService()
	service.hashPassword = func(string) (string, error) { return "", errors.New("entropy exhausted") }

	_, err := service.Signup(context.Background(), validSignup())

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeUpstreamAuth, appError.Code)
	assert.Equal(t, http.StatusInternalServerError, appError.HTTPStatus)
	assert.Empty(t, accounts.accounts)
}

/*
TestSignup_PasswordAtBcryptLimit hashes a 72-byte password with real bcrypt
and rejects one byte more as a validation error rather than a 500.
*/
func TestSignup_PasswordAtBcryptLimit(t *testing.T) {
	service, accounts, _ := newTestService()
	service.hashPassword = sec.HashPassword

	input := validSignup()
	input.Password = strings.Repeat("a", MaxPasswordBytes)
	_, err := service.Signup(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, accounts.accounts, 1)

	input = validSignup()
	input.Email = "second@example.com"
	input.Password = strings.Repeat("a", MaxPasswordBytes+1)
	_, err = service.Signup(context.Background(), input)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeValidation, appError.Code)
	assert.Equal(t, http.StatusBadRequest, appError.HTTPStatus)
	assert.Len(t, accounts.accounts, 1)
}

// # Sessions

func signupAndLogin(t *testing.T, service *Service) *LoginSession {
	t.Helper()

	// Login compares with bcrypt, so this account gets a real hash.
	service.hashPassword = sec.HashPassword
	_, err := service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), LoginInput{
		Email:    "creator@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	return session
}

func TestLogin_IssuesSession(t *testing.T) {
	service, _, sessions := newTestService()

	session := signupAndLogin(t, service)

	assert.Contains(t, session.AccessToken, ":influencer")
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.sessions, 1)
	_, stored := sessions.sessions[sec.HashToken(session.RefreshToken)]
	assert.True(t, stored)
}

/*
TestLogin_WrongCredentials hides whether the email exists.
*/
func TestLogin_WrongCredentials(t *testing.T) {
	service, _, _ := newTestService()
	signupAndLogin(t, service)

	_, err := service.Login(context.Background(), LoginInput{Email: "creator@example.com", Password: "wrong-pass"})
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	_, err = service.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "wrong-pass"})
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
}

/*
TestRefresh_Rotates invalidates the old refresh token after use.
*/
func TestRefresh_Rotates(t *testing.T) {
	service, _, sessions := newTestService()
	first := signupAndLogin(t, service)

	second, err := service.Refresh(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	_, err = service.Refresh(context.Background(), first.RefreshToken, "", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
}

func TestLogout_Idempotent(t *testing.T) {
	service, _, sessions := newTestService()
	session := signupAndLogin(t, service)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
	require.NoError(t, service.Logout(context.Background(), ""))
	assert.Empty(t, sessions.sessions)
}

func TestMe(t *testing.T) {
	service, _, _ := newTestService()
	session := signupAndLogin(t, service)

	me, err := service.Me(context.Background(), session.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kim Minji", me.Profile.FullName)
	assert.Equal(t, "creator@example.com", me.Account.Email)
}
