// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Campaign"), http.StatusNotFound, apperr.CodeNotFound},
		{"unauthorized", apperr.Unauthorized("Authentication required"), http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"forbidden", apperr.Forbidden("Not the campaign owner"), http.StatusForbidden, apperr.CodeForbidden},
		{"conflict", apperr.Conflict("Already applied"), http.StatusConflict, apperr.CodeConflict},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"persistence", apperr.Persistence(errors.New("deadlock")), http.StatusInternalServerError, apperr.CodePersistence},
		{"upstream_auth", apperr.UpstreamAuth(http.StatusBadGateway, "Identity provider failed", nil), http.StatusBadGateway, apperr.CodeUpstreamAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

/*
TestHasCode_ThroughWrapping finds the code behind fmt.Errorf wrapping and
keeps the cause reachable.
*/
func TestHasCode_ThroughWrapping(t *testing.T) {
	cause := errors.New("unique_violation")
	wrapped := fmt.Errorf("create application: %w", apperr.Conflict("Already applied").WithCause(cause))

	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeConflict))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.ErrorIs(t, wrapped, cause)

	appError := apperr.As(wrapped)
	require.NotNil(t, appError)
	assert.Equal(t, "Already applied", appError.Error())
}

func TestHasCode_PlainError(t *testing.T) {
	assert.False(t, apperr.HasCode(errors.New("boom"), apperr.CodeInternal))
	assert.Nil(t, apperr.As(errors.New("boom")))
}
