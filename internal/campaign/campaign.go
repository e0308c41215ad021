// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package campaign manages the campaigns advertisers publish and influencers
browse.

A campaign is open for applications only while its status is
[StatusRecruiting]. Status moves forward one step at a time:

	recruiting → recruitment_closed → selection_completed
*/
package campaign

import (
	"regexp"
	"time"

	"github.com/taibuivan/campaignhub/internal/category"
)

// # Status

// Status is the recruitment stage of a campaign.
type Status string

const (
	StatusRecruiting         Status = "recruiting"
	StatusRecruitmentClosed  Status = "recruitment_closed"
	StatusSelectionCompleted Status = "selection_completed"
)

// StatusNames lists the accepted status strings.
func StatusNames() []string {
	return []string{string(StatusRecruiting), string(StatusRecruitmentClosed), string(StatusSelectionCompleted)}
}

// IsOpen reports whether the campaign accepts applications in this status.
func (s Status) IsOpen() bool {
	return s == StatusRecruiting
}

// CanTransitionTo reports whether next is the single step after s.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusRecruiting:
		return next == StatusRecruitmentClosed
	case StatusRecruitmentClosed:
		return next == StatusSelectionCompleted
	}
	return false
}

// # Domain Entities

// Campaign is a recruitment posted by an advertiser.
type Campaign struct {
	ID                  string             `json:"id"`
	AdvertiserID        string             `json:"advertiserId"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Category            category.Category  `json:"category"`
	Mission             string             `json:"mission"`
	Benefits            string             `json:"benefits"`
	TargetAudience      string             `json:"targetAudience"`
	StoreName           string             `json:"storeName"`
	StoreAddress        string             `json:"storeAddress"`
	StorePhone          *string            `json:"storePhone"`
	ApplicationDeadline time.Time          `json:"applicationDeadline"`
	CampaignStartDate   time.Time          `json:"campaignStartDate"`
	CampaignEndDate     time.Time          `json:"campaignEndDate"`
	MaxParticipants     int                `json:"maxParticipants"`
	CurrentParticipants int                `json:"currentParticipants"`
	Status              Status             `json:"status"`
	Advertiser          *AdvertiserSummary `json:"advertiser,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// AdvertiserSummary is the advertiser display data joined onto campaigns.
type AdvertiserSummary struct {
	CompanyName  string            `json:"companyName"`
	BusinessType category.Category `json:"businessType"`
}

// IsFull reports whether every participant slot is taken.
func (c *Campaign) IsFull() bool {
	return c.CurrentParticipants >= c.MaxParticipants
}

// Filter narrows campaign listings. Zero values mean "no restriction".
type Filter struct {
	AdvertiserID string
	Status       Status
	Category     category.Category
	Search       string
}

// # Field Names

const (
	FieldTitle               = "title"
	FieldDescription         = "description"
	FieldCategory            = "category"
	FieldMission             = "mission"
	FieldBenefits            = "benefits"
	FieldTargetAudience      = "targetAudience"
	FieldStoreName           = "storeName"
	FieldStoreAddress        = "storeAddress"
	FieldStorePhone          = "storePhone"
	FieldApplicationDeadline = "applicationDeadline"
	FieldCampaignStartDate   = "campaignStartDate"
	FieldCampaignEndDate     = "campaignEndDate"
	FieldMaxParticipants     = "maxParticipants"
	FieldStatus              = "status"
	FieldSearch              = "search"
)

// # Rules

const (
	MinTitleLength          = 5
	MaxTitleLength          = 100
	MinDescriptionLength    = 10
	MaxDescriptionLength    = 2000
	MinMissionLength        = 10
	MaxMissionLength        = 1000
	MinBenefitsLength       = 5
	MaxBenefitsLength       = 1000
	MaxTargetAudienceLength = 200
	MaxStoreNameLength      = 100
	MaxStoreAddressLength   = 200
	MinParticipants         = 1
	MaxParticipants         = 1000
	MaxSearchLength         = 100
)

// 02-123-4567, 031-1234-5678
var storePhonePattern = regexp.MustCompile(`^0\d{1,2}-\d{3,4}-\d{4}$`)
