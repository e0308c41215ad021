// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advertiser_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/internal/advertiser"
	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

// memoryRepository enforces the same two unique constraints as the table.
type memoryRepository struct {
	mu       sync.Mutex
	profiles map[string]*advertiser.Profile
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{profiles: make(map[string]*advertiser.Profile)}
}

func (repository *memoryRepository) Create(_ context.Context, profile *advertiser.Profile) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.profiles {
		if existing.UserID == profile.UserID {
			return apperr.Conflict("Advertiser profile already exists")
		}
		if existing.BusinessNumber == profile.BusinessNumber {
			return apperr.Conflict("Business number is already registered")
		}
	}
	repository.profiles[profile.ID] = profile
	return nil
}

func (repository *memoryRepository) FindByUserID(_ context.Context, userID string) (*advertiser.Profile, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, profile := range repository.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, apperr.NotFound("Advertiser profile")
}

func validInput() advertiser.CreateProfileInput {
	return advertiser.CreateProfileInput{
		CompanyName:        "Seoul Bakery",
		BusinessNumber:     "123-45-67890",
		ContactName:        "Park Jisoo",
		ContactPhone:       "010-1234-5678",
		ContactEmail:       "owner@seoulbakery.kr",
		BusinessType:       "food",
		CompanyDescription: "Neighbourhood bakery since 1998.",
	}
}

func TestCreateProfile_Success(t *testing.T) {
	repository := newMemoryRepository()
	service := advertiser.NewService(repository)

	result, err := service.CreateProfile(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ProfileID)
	assert.Equal(t, advertiser.VerificationPending, result.VerificationStatus)

	stored, err := service.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, result.ProfileID, stored.ID)
	assert.EqualValues(t, "food", stored.BusinessType)
}

/*
TestCreateProfile_Validation covers each field rule.
*/
func TestCreateProfile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*advertiser.CreateProfileInput)
		field  string
	}{
		{"empty_company", func(in *advertiser.CreateProfileInput) { in.CompanyName = "  " }, advertiser.FieldCompanyName},
		{"business_number_no_dashes", func(in *advertiser.CreateProfileInput) { in.BusinessNumber = "1234567890" }, advertiser.FieldBusinessNumber},
		{"business_number_short", func(in *advertiser.CreateProfileInput) { in.BusinessNumber = "123-45-6789" }, advertiser.FieldBusinessNumber},
		{"contact_name_too_long", func(in *advertiser.CreateProfileInput) { in.ContactName = strings.Repeat("a", 51) }, advertiser.FieldContactName},
		{"contact_phone_landline", func(in *advertiser.CreateProfileInput) { in.ContactPhone = "02-123-4567" }, advertiser.FieldContactPhone},
		{"contact_email", func(in *advertiser.CreateProfileInput) { in.ContactEmail = "owner@" }, advertiser.FieldContactEmail},
		{"business_type", func(in *advertiser.CreateProfileInput) { in.BusinessType = "travel" }, advertiser.FieldBusinessType},
		{"description_short", func(in *advertiser.CreateProfileInput) { in.CompanyDescription = "Bakery" }, advertiser.FieldCompanyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := newMemoryRepository()
			service := advertiser.NewService(repository)
			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateProfile(context.Background(), "user-1", input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			require.NotEmpty(t, appError.Details)
			assert.Equal(t, tt.field, appError.Details[0].Field)
			assert.Empty(t, repository.profiles)
		})
	}
}

func TestCreateProfile_Conflicts(t *testing.T) {
	service := advertiser.NewService(newMemoryRepository())

	_, err := service.CreateProfile(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	_, err = service.CreateProfile(context.Background(), "user-1", validInput())
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict), "second profile for the same user")

	_, err = service.CreateProfile(context.Background(), "user-2", validInput())
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict), "business number reused by another user")
}

func TestGetProfile_Missing(t *testing.T) {
	service := advertiser.NewService(newMemoryRepository())

	_, err := service.GetProfile(context.Background(), "nobody")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
