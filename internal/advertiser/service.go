// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advertiser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/campaignhub/internal/category"
	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/validate"
	"github.com/taibuivan/campaignhub/pkg/textnorm"
	"github.com/taibuivan/campaignhub/pkg/uuid"
)

// # Service Layer

// Service implements advertiser onboarding.
type Service struct {
	repository Repository
}

// NewService constructs a new advertiser [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// CreateProfileInput is the registration payload.
type CreateProfileInput struct {
	CompanyName        string `json:"companyName"`
	BusinessNumber     string `json:"businessNumber"`
	ContactName        string `json:"contactName"`
	ContactPhone       string `json:"contactPhone"`
	ContactEmail       string `json:"contactEmail"`
	BusinessType       string `json:"businessType"`
	CompanyDescription string `json:"companyDescription"`
}

// CreateProfileResult is returned after registration.
type CreateProfileResult struct {
	ProfileID          string             `json:"profileId"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

func (input *CreateProfileInput) normalize() {
	input.CompanyName = textnorm.Clean(input.CompanyName)
	input.BusinessNumber = strings.TrimSpace(input.BusinessNumber)
	input.ContactName = textnorm.Clean(input.ContactName)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
	input.ContactEmail = strings.ToLower(strings.TrimSpace(input.ContactEmail))
	input.BusinessType = strings.TrimSpace(input.BusinessType)
	input.CompanyDescription = textnorm.Trim(input.CompanyDescription)
}

func (input CreateProfileInput) validate() error {
	validator := &validate.Validator{}
	return validator.
		Length(FieldCompanyName, input.CompanyName, 1, MaxCompanyNameLength).
		Pattern(FieldBusinessNumber, input.BusinessNumber, businessNumberPattern, "Must look like 123-45-67890").
		Length(FieldContactName, input.ContactName, 1, MaxContactNameLength).
		Pattern(FieldContactPhone, input.ContactPhone, contactPhonePattern, "Must look like 010-1234-5678").
		Email(FieldContactEmail, input.ContactEmail).
		OneOf(FieldBusinessType, input.BusinessType, category.Names()...).
		Length(FieldCompanyDescription, input.CompanyDescription, MinDescriptionLength, MaxDescriptionLength).
		Err()
}

/*
CreateProfile registers the caller's company. The profile starts in the
pending verification state.

Returns:
  - *CreateProfileResult: New profile id and status
  - error: Validation, Conflict (duplicate profile or business number) or persistence errors
*/
func (service *Service) CreateProfile(context context.Context, userID string, input CreateProfileInput) (*CreateProfileResult, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	profile := &Profile{
		ID:                 uuid.New(),
		UserID:             userID,
		CompanyName:        input.CompanyName,
		BusinessNumber:     input.BusinessNumber,
		ContactName:        input.ContactName,
		ContactPhone:       input.ContactPhone,
		ContactEmail:       input.ContactEmail,
		BusinessType:       category.Category(input.BusinessType),
		CompanyDescription: input.CompanyDescription,
		VerificationStatus: VerificationPending,
	}

	if err := service.repository.Create(context, profile); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("advertiser_profile_created",
		slog.String("profile_id", profile.ID),
		slog.String("user_id", userID),
	)

	return &CreateProfileResult{
		ProfileID:          profile.ID,
		VerificationStatus: profile.VerificationStatus,
	}, nil
}

// GetProfile returns the caller's profile, or NotFound.
func (service *Service) GetProfile(context context.Context, userID string) (*Profile, error) {
	return service.repository.FindByUserID(context, userID)
}
