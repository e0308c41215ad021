// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/campaignhub/internal/campaign"
	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/metrics"
	"github.com/taibuivan/campaignhub/internal/platform/validate"
	"github.com/taibuivan/campaignhub/pkg/pagination"
	"github.com/taibuivan/campaignhub/pkg/pointer"
	"github.com/taibuivan/campaignhub/pkg/textnorm"
	"github.com/taibuivan/campaignhub/pkg/uuid"
)

// # Service Layer

// Service orchestrates applying to and reviewing campaigns.
type Service struct {
	repository Repository
	campaigns  CampaignReader
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewService constructs a new application [Service]. m may be nil.
func NewService(repository Repository, campaigns CampaignReader, m *metrics.Metrics) *Service {
	return &Service{
		repository: repository,
		campaigns:  campaigns,
		metrics:    m,
		now:        time.Now,
	}
}

// # Apply

// CreateInput is the application payload.
type CreateInput struct {
	CampaignID      string `json:"campaignId"`
	Motivation      string `json:"motivation"`
	Experience      string `json:"experience"`
	ExpectedOutcome string `json:"expectedOutcome"`
}

// CreateResult is returned after applying.
type CreateResult struct {
	ApplicationID string    `json:"applicationId"`
	Status        Status    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

func (input *CreateInput) normalize() {
	input.CampaignID = strings.TrimSpace(input.CampaignID)
	input.Motivation = textnorm.Trim(input.Motivation)
	input.Experience = textnorm.Trim(input.Experience)
	input.ExpectedOutcome = textnorm.Trim(input.ExpectedOutcome)
}

func (input CreateInput) validate() error {
	validator := &validate.Validator{}
	return validator.
		UUID(FieldCampaignID, input.CampaignID).
		Length(FieldMotivation, input.Motivation, MinTextLength, MaxTextLength).
		Length(FieldExperience, input.Experience, MinTextLength, MaxTextLength).
		Length(FieldExpectedOutcome, input.ExpectedOutcome, MinTextLength, MaxTextLength).
		Err()
}

/*
Create submits the caller's application.

Checks run in order and stop at the first failure:
 1. The campaign exists (NotFound).
 2. The caller has not applied before (Conflict).
 3. The campaign is recruiting (NotFound).
 4. The deadline has not passed ([ErrDeadlinePassed]).
 5. A participant slot is free ([ErrCapacityFull]).
*/
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*CreateResult, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	target, err := service.campaigns.FindByID(context, input.CampaignID)
	if err != nil {
		return nil, err
	}

	exists, err := service.repository.Exists(context, userID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		service.metrics.RecordApplication(outcomeDuplicate)
		return nil, apperr.Conflict("You have already applied to this campaign")
	}

	if !target.Status.IsOpen() {
		service.metrics.RecordApplication(outcomeNotOpen)
		return nil, apperr.NotFound("Open campaign")
	}

	now := service.now().UTC()
	if !now.Before(target.ApplicationDeadline) {
		service.metrics.RecordApplication(outcomeDeadlinePassed)
		return nil, ErrDeadlinePassed
	}

	if target.IsFull() {
		service.metrics.RecordApplication(outcomeCapacityFull)
		return nil, ErrCapacityFull
	}

	application := &Application{
		ID:              uuid.New(),
		UserID:          userID,
		CampaignID:      target.ID,
		Motivation:      input.Motivation,
		Experience:      input.Experience,
		ExpectedOutcome: input.ExpectedOutcome,
		Status:          StatusPending,
	}
	if err := service.repository.Create(context, application); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			service.metrics.RecordApplication(outcomeDuplicate)
		}
		return nil, err
	}

	service.metrics.RecordApplication(outcomeSubmitted)
	ctxutil.GetLogger(context).Info("application_submitted",
		slog.String("application_id", application.ID),
		slog.String("campaign_id", target.ID),
		slog.String("user_id", userID),
	)

	return &CreateResult{
		ApplicationID: application.ID,
		Status:        application.Status,
		SubmittedAt:   application.SubmittedAt,
	}, nil
}

// # Listing

// ListResult is one page of applications.
type ListResult[T any] struct {
	Applications []T             `json:"applications"`
	Pagination   pagination.Meta `json:"pagination"`
}

func parseStatusFilter(raw string) (Status, error) {
	status := Status(strings.TrimSpace(raw))
	if status == "" {
		return "", nil
	}

	validator := &validate.Validator{}
	return status, validator.OneOf(FieldStatus, string(status), StatusNames()...).Err()
}

// ListMine returns the caller's applications with campaign titles.
func (service *Service) ListMine(context context.Context, userID, status string, page pagination.Params) (*ListResult[*Submitted], error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	items, total, err := service.repository.ListByUser(context, userID, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ListResult[*Submitted]{Applications: items, Pagination: pagination.NewMeta(page.Page, page.Limit, total)}, nil
}

/*
ListForCampaign returns a campaign's applications to its owner.

Returns:
  - error: NotFound (campaign), Forbidden (not the owner) or Validation (status filter)
*/
func (service *Service) ListForCampaign(context context.Context, advertiserID, campaignID, status string, page pagination.Params) (*ListResult[*Received], error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	if _, err := service.ownedCampaign(context, advertiserID, campaignID); err != nil {
		return nil, err
	}

	items, total, err := service.repository.ListByCampaign(context, campaignID, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ListResult[*Received]{Applications: items, Pagination: pagination.NewMeta(page.Page, page.Limit, total)}, nil
}

// ownedCampaign loads a campaign and confirms the caller owns it.
func (service *Service) ownedCampaign(context context.Context, advertiserID, campaignID string) (*campaign.Campaign, error) {
	target, err := service.campaigns.FindByID(context, campaignID)
	if err != nil {
		return nil, err
	}
	if target.AdvertiserID != advertiserID {
		return nil, apperr.Forbidden("You do not own this campaign")
	}
	return target, nil
}

// ownedApplication loads an application whose campaign the caller owns.
func (service *Service) ownedApplication(context context.Context, advertiserID, applicationID string) (*Application, error) {
	application, err := service.repository.FindByID(context, applicationID)
	if err != nil {
		return nil, err
	}
	if _, err := service.ownedCampaign(context, advertiserID, application.CampaignID); err != nil {
		return nil, err
	}
	return application, nil
}

// # Review

// ReviewInput is the review payload.
type ReviewInput struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

// ReviewResult is returned after a status change.
type ReviewResult struct {
	ApplicationID string     `json:"applicationId"`
	Status        Status     `json:"status"`
	Feedback      *string    `json:"feedback"`
	ReviewedAt    *time.Time `json:"reviewedAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func newReviewResult(application *Application) *ReviewResult {
	return &ReviewResult{
		ApplicationID: application.ID,
		Status:        application.Status,
		Feedback:      application.Feedback,
		ReviewedAt:    application.ReviewedAt,
		UpdatedAt:     application.UpdatedAt,
	}
}

/*
Review approves or rejects a pending application on the caller's campaign.

Description: Approving takes a participant slot in the same transaction.
A decided application must be reopened before it can be reviewed again.

Returns:
  - error: Validation, NotFound, Forbidden (not the campaign owner; nothing is
    written) or Conflict (not pending, or no free slot)
*/
func (service *Service) Review(context context.Context, advertiserID, applicationID string, input ReviewInput) (*ReviewResult, error) {
	decision := Status(strings.TrimSpace(input.Status))

	feedback := pointer.NonZero(textnorm.Trim(pointer.Value(input.Feedback)))

	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(decision), DecisionNames()...)
	if feedback != nil {
		validator.MaxLen(FieldFeedback, *feedback, MaxFeedbackLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	application, err := service.ownedApplication(context, advertiserID, applicationID)
	if err != nil {
		return nil, err
	}

	if application.Status != StatusPending {
		return nil, apperr.Conflict("Only pending applications can be reviewed")
	}

	now := service.now().UTC()
	transition := Transition{
		ApplicationID: application.ID,
		CampaignID:    application.CampaignID,
		From:          StatusPending,
		To:            decision,
		Feedback:      feedback,
		ReviewedAt:    &now,
		At:            now,
	}
	if decision == StatusApproved {
		transition.ParticipantDelta = 1
	}

	updated, err := service.repository.Apply(context, transition)
	if err != nil {
		return nil, err
	}

	service.metrics.RecordReview(string(decision))
	ctxutil.GetLogger(context).Info("application_reviewed",
		slog.String("application_id", updated.ID),
		slog.String("campaign_id", updated.CampaignID),
		slog.String("status", string(decision)),
	)

	return newReviewResult(updated), nil
}

/*
Reopen returns a decided application to pending so it can be reviewed again.
Feedback and the review time are cleared and an approval's slot is released.
*/
func (service *Service) Reopen(context context.Context, advertiserID, applicationID string) (*ReviewResult, error) {
	application, err := service.ownedApplication(context, advertiserID, applicationID)
	if err != nil {
		return nil, err
	}

	if !application.Status.IsDecided() {
		return nil, apperr.Conflict("Only approved or rejected applications can be reopened")
	}

	transition := Transition{
		ApplicationID: application.ID,
		CampaignID:    application.CampaignID,
		From:          application.Status,
		To:            StatusPending,
		At:            service.now().UTC(),
	}
	if application.Status == StatusApproved {
		transition.ParticipantDelta = -1
	}

	updated, err := service.repository.Apply(context, transition)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("application_reopened",
		slog.String("application_id", updated.ID),
		slog.String("previous_status", string(application.Status)),
	)

	return newReviewResult(updated), nil
}

/*
Withdraw lets the applicant cancel a pending application.
*/
func (service *Service) Withdraw(context context.Context, userID, applicationID string) (*ReviewResult, error) {
	application, err := service.repository.FindByID(context, applicationID)
	if err != nil {
		return nil, err
	}

	if application.UserID != userID {
		return nil, apperr.Forbidden("You can only withdraw your own application")
	}
	if application.Status != StatusPending {
		return nil, apperr.Conflict("Only pending applications can be withdrawn")
	}

	updated, err := service.repository.Apply(context, Transition{
		ApplicationID: application.ID,
		CampaignID:    application.CampaignID,
		From:          StatusPending,
		To:            StatusWithdrawn,
		At:            service.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("application_withdrawn", slog.String("application_id", updated.ID))
	return newReviewResult(updated), nil
}
