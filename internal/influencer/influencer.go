// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package influencer manages influencer profiles and their social channels.

A profile and every channel submitted with it are written in one transaction.
Members must be adults; see [AgeOn].
*/
package influencer

import (
	"time"
)

// # Domain Entities

// Platform is a supported social network.
type Platform string

const (
	PlatformNaver     Platform = "naver"
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformThreads   Platform = "threads"
)

// PlatformNames lists the accepted platform strings.
func PlatformNames() []string {
	return []string{string(PlatformNaver), string(PlatformYoutube), string(PlatformInstagram), string(PlatformThreads)}
}

// VerificationStatus tracks the manual review of a channel.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Profile is an influencer's onboarding record.
type Profile struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	BirthDate  time.Time  `json:"birthDate"`
	IsVerified bool       `json:"isVerified"`
	Channels   []*Channel `json:"channels"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Channel is one social account owned by an influencer.
type Channel struct {
	ID                 string             `json:"id"`
	ProfileID          string             `json:"profileId"`
	UserID             string             `json:"userId"`
	Platform           Platform           `json:"platform"`
	ChannelName        string             `json:"channelName"`
	ChannelURL         string             `json:"channelUrl"`
	FollowerCount      *int               `json:"followerCount,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// # Field Names

const (
	FieldBirthDate     = "birthDate"
	FieldChannels      = "channels"
	FieldPlatform      = "platform"
	FieldChannelName   = "channelName"
	FieldChannelURL    = "channelUrl"
	FieldFollowerCount = "followerCount"
)

// # Rules

const (
	// MinimumAge is the age a member must have reached to register.
	MinimumAge = 18

	// BirthDateLayout is the accepted birthDate format.
	BirthDateLayout = time.DateOnly

	MaxChannelNameLength = 100

	constraintUserID = "influencer_profile_user_id_key"
)
