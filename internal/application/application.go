// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package application handles influencer applications to campaigns and their
review by the owning advertiser.

# Lifecycle

	pending → approved | rejected   (review, campaign owner)
	approved | rejected → pending   (reopen, campaign owner)
	pending → withdrawn             (withdraw, applicant)

Approving takes one participant slot on the campaign and reopening an approved
application gives it back; both happen in the same transaction as the status
change.
*/
package application

import (
	"time"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

// # Status

// Status is the review state of an application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// StatusNames lists every status for filter validation.
func StatusNames() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected), string(StatusWithdrawn)}
}

// DecisionNames lists the statuses a reviewer may set.
func DecisionNames() []string {
	return []string{string(StatusApproved), string(StatusRejected)}
}

// IsDecided reports whether a reviewer has approved or rejected.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// # Domain Entities

// Application is one influencer's request to join one campaign.
type Application struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	CampaignID      string     `json:"campaignId"`
	Motivation      string     `json:"motivation"`
	Experience      string     `json:"experience"`
	ExpectedOutcome string     `json:"expectedOutcome"`
	Status          Status     `json:"status"`
	Feedback        *string    `json:"feedback"`
	ReviewedAt      *time.Time `json:"reviewedAt"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Submitted is an application listed for its applicant.
type Submitted struct {
	*Application
	CampaignTitle string `json:"campaignTitle"`
}

// Received is an application listed for the campaign owner.
type Received struct {
	*Application
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
}

// Transition is a guarded status change applied in one transaction.
//
// The application row changes only while its status still equals From.
// ParticipantDelta adjusts the campaign's participant count in the same
// transaction: +1 takes a slot, -1 releases one.
type Transition struct {
	ApplicationID    string
	CampaignID       string
	From             Status
	To               Status
	Feedback         *string
	ReviewedAt       *time.Time
	At               time.Time
	ParticipantDelta int
}

// # Errors

var (
	// ErrDeadlinePassed is returned when applying after the application deadline.
	ErrDeadlinePassed = apperr.ValidationError("The application deadline has passed")

	// ErrCapacityFull is returned when applying to a campaign with no free slots.
	ErrCapacityFull = apperr.ValidationError("The campaign has reached its participant limit")
)

// # Field Names

const (
	FieldCampaignID      = "campaignId"
	FieldMotivation      = "motivation"
	FieldExperience      = "experience"
	FieldExpectedOutcome = "expectedOutcome"
	FieldStatus          = "status"
	FieldFeedback        = "feedback"
)

// # Rules

const (
	MinTextLength     = 10
	MaxTextLength     = 1000
	MaxFeedbackLength = 500

	constraintUserCampaign = "application_user_campaign_key"
)

// Outcome labels for the applications counter.
const (
	outcomeSubmitted      = "submitted"
	outcomeDuplicate      = "duplicate"
	outcomeNotOpen        = "not_open"
	outcomeDeadlinePassed = "deadline_passed"
	outcomeCapacityFull   = "capacity_full"
)
