// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
	"github.com/taibuivan/campaignhub/internal/platform/validate"
	"github.com/taibuivan/campaignhub/pkg/slice"
	"github.com/taibuivan/campaignhub/pkg/textnorm"
	"github.com/taibuivan/campaignhub/pkg/uuid"
)

// # Service Layer

// Service implements influencer onboarding.
type Service struct {
	repository Repository
	now        func() time.Time
}

// NewService constructs a new influencer [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository, now: time.Now}
}

// ChannelInput is one channel in the registration payload.
type ChannelInput struct {
	Platform      string `json:"platform"`
	ChannelName   string `json:"channelName"`
	ChannelURL    string `json:"channelUrl"`
	FollowerCount *int   `json:"followerCount"`
}

// CreateProfileInput is the registration payload.
type CreateProfileInput struct {
	BirthDate string         `json:"birthDate"`
	Channels  []ChannelInput `json:"channels"`
}

// ChannelSummary describes a stored channel in the registration response.
type ChannelSummary struct {
	ID                 string             `json:"id"`
	Platform           Platform           `json:"platform"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

// CreateProfileResult is returned after registration.
type CreateProfileResult struct {
	ProfileID string           `json:"profileId"`
	Channels  []ChannelSummary `json:"channels"`
}

func (input *CreateProfileInput) normalize() {
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	for i := range input.Channels {
		channel := &input.Channels[i]
		channel.Platform = strings.ToLower(strings.TrimSpace(channel.Platform))
		channel.ChannelName = textnorm.Clean(channel.ChannelName)
		channel.ChannelURL = strings.TrimSpace(channel.ChannelURL)
	}
}

// validate checks the payload and returns the parsed birth date.
func (input CreateProfileInput) validate(today time.Time) (time.Time, error) {
	validator := &validate.Validator{}

	birthDate, err := time.Parse(BirthDateLayout, input.BirthDate)
	if err != nil {
		validator.Custom(FieldBirthDate, true, "Must be a date in YYYY-MM-DD format")
	} else {
		validator.Custom(FieldBirthDate, AgeOn(birthDate, today) < MinimumAge,
			fmt.Sprintf("Must be at least %d years old", MinimumAge))
	}

	validator.Custom(FieldChannels, len(input.Channels) == 0, "At least one channel is required")

	for i, channel := range input.Channels {
		prefix := fmt.Sprintf("%s[%d].", FieldChannels, i)
		validator.
			OneOf(prefix+FieldPlatform, channel.Platform, PlatformNames()...).
			Length(prefix+FieldChannelName, channel.ChannelName, 1, MaxChannelNameLength).
			URL(prefix+FieldChannelURL, channel.ChannelURL).
			Custom(prefix+FieldFollowerCount, channel.FollowerCount != nil && *channel.FollowerCount < 0, "Must be zero or greater")
	}

	return birthDate, validator.Err()
}

/*
CreateProfile registers the caller as an influencer.

Steps:
 1. Validate the payload, including the age gate.
 2. Confirm the caller's user profile carries the influencer role.
 3. Insert the profile and every channel in one transaction.

Returns:
  - *CreateProfileResult: New profile id and channel summaries
  - error: Validation, NotFound (no user profile), Forbidden (other role),
    Conflict (profile exists) or persistence errors
*/
func (service *Service) CreateProfile(context context.Context, userID string, input CreateProfileInput) (*CreateProfileResult, error) {
	input.normalize()

	now := service.now().UTC()
	birthDate, err := input.validate(now)
	if err != nil {
		return nil, err
	}

	role, err := service.repository.FindUserRole(context, userID)
	if err != nil {
		return nil, err
	}
	if role != sec.RoleInfluencer {
		return nil, apperr.Forbidden("Only influencer accounts can register an influencer profile")
	}

	profile := &Profile{
		ID:         uuid.New(),
		UserID:     userID,
		BirthDate:  birthDate,
		IsVerified: false,
	}
	profile.Channels = slice.Map(input.Channels, func(channel ChannelInput) *Channel {
		return &Channel{
			ID:                 uuid.New(),
			ProfileID:          profile.ID,
			UserID:             userID,
			Platform:           Platform(channel.Platform),
			ChannelName:        channel.ChannelName,
			ChannelURL:         channel.ChannelURL,
			FollowerCount:      channel.FollowerCount,
			VerificationStatus: VerificationPending,
		}
	})

	if err := service.repository.CreateWithChannels(context, profile); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("influencer_profile_created",
		slog.String("profile_id", profile.ID),
		slog.String("user_id", userID),
		slog.Int("channels", len(profile.Channels)),
	)

	return &CreateProfileResult{
		ProfileID: profile.ID,
		Channels: slice.Map(profile.Channels, func(channel *Channel) ChannelSummary {
			return ChannelSummary{
				ID:                 channel.ID,
				Platform:           channel.Platform,
				VerificationStatus: channel.VerificationStatus,
			}
		}),
	}, nil
}

// GetProfile returns the caller's profile with its channels.
func (service *Service) GetProfile(context context.Context, userID string) (*Profile, error) {
	return service.repository.FindByUserID(context, userID)
}
