// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package advertiser manages the company profile an advertiser must register
before publishing campaigns.

A profile is created once per account. The business registration number is
globally unique and both rules are enforced by unique constraints, so two
concurrent registrations cannot both succeed.
*/
package advertiser

import (
	"regexp"
	"time"

	"github.com/taibuivan/campaignhub/internal/category"
)

// # Domain Entities

// VerificationStatus tracks the manual business verification of a profile.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Profile is an advertiser's company profile.
type Profile struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId"`
	CompanyName        string             `json:"companyName"`
	BusinessNumber     string             `json:"businessNumber"`
	ContactName        string             `json:"contactName"`
	ContactPhone       string             `json:"contactPhone"`
	ContactEmail       string             `json:"contactEmail"`
	BusinessType       category.Category  `json:"businessType"`
	CompanyDescription string             `json:"companyDescription"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// # Field Names

const (
	FieldCompanyName        = "companyName"
	FieldBusinessNumber     = "businessNumber"
	FieldContactName        = "contactName"
	FieldContactPhone       = "contactPhone"
	FieldContactEmail       = "contactEmail"
	FieldBusinessType       = "businessType"
	FieldCompanyDescription = "companyDescription"
)

// # Rules

const (
	MaxCompanyNameLength = 100
	MaxContactNameLength = 50
	MinDescriptionLength = 10
	MaxDescriptionLength = 1000
)

const (
	constraintUserID         = "advertiser_profile_user_id_key"
	constraintBusinessNumber = "advertiser_profile_business_number_key"
)

var (
	// 123-45-67890
	businessNumberPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)
	// 010-1234-5678
	contactPhonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
)
