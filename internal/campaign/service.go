// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package campaign

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/campaignhub/internal/category"
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

// Service orchestrates campaign browsing and management.
type Service struct {
	repository Repository
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewService constructs a new campaign [Service]. m may be nil.
func NewService(repository Repository, m *metrics.Metrics) *Service {
	return &Service{repository: repository, metrics: m, now: time.Now}
}

// # Listing

// ListQuery holds the raw listing filters from the query string.
type ListQuery struct {
	Status   string
	Category string
	Search   string
}

// ListResult is one page of campaigns.
type ListResult struct {
	Campaigns  []*Campaign     `json:"campaigns"`
	Pagination pagination.Meta `json:"pagination"`
}

// toFilter validates query and converts it to a [Filter].
func (query ListQuery) toFilter() (Filter, error) {
	filter := Filter{
		Status:   Status(strings.TrimSpace(query.Status)),
		Category: category.Category(strings.TrimSpace(query.Category)),
		Search:   textnorm.Clean(query.Search),
	}

	validator := &validate.Validator{}
	if filter.Status != "" {
		validator.OneOf(FieldStatus, string(filter.Status), StatusNames()...)
	}
	if filter.Category != "" {
		validator.OneOf(FieldCategory, string(filter.Category), category.Names()...)
	}
	validator.MaxLen(FieldSearch, filter.Search, MaxSearchLength)

	return filter, validator.Err()
}

/*
ListPublic returns open campaigns for anonymous browsing.

Description: The status filter defaults to recruiting and no other status is
visible publicly.
*/
func (service *Service) ListPublic(context context.Context, query ListQuery, page pagination.Params) (*ListResult, error) {
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}

	if filter.Status == "" {
		filter.Status = StatusRecruiting
	}
	if !filter.Status.IsOpen() {
		return nil, validate.RequiredError(FieldStatus, "Only recruiting campaigns are listed publicly")
	}

	return service.list(context, filter, page)
}

/*
ListMine returns the advertiser's own campaigns in every status unless a
status filter is given.
*/
func (service *Service) ListMine(context context.Context, advertiserID string, query ListQuery, page pagination.Params) (*ListResult, error) {
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}
	filter.AdvertiserID = advertiserID

	return service.list(context, filter, page)
}

func (service *Service) list(context context.Context, filter Filter, page pagination.Params) (*ListResult, error) {
	campaigns, total, err := service.repository.List(context, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Campaigns:  campaigns,
		Pagination: pagination.NewMeta(page.Page, page.Limit, total),
	}, nil
}

// # Detail

/*
GetPublic returns an open campaign. Campaigns in any other status are
reported as not found.
*/
func (service *Service) GetPublic(context context.Context, id string) (*Campaign, error) {
	campaign, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !campaign.Status.IsOpen() {
		return nil, apperr.NotFound("Campaign")
	}
	return campaign, nil
}

// GetMine returns one of the advertiser's campaigns in any status.
func (service *Service) GetMine(context context.Context, advertiserID, id string) (*Campaign, error) {
	return service.findOwned(context, advertiserID, id)
}

// findOwned loads a campaign and confirms the caller owns it.
func (service *Service) findOwned(context context.Context, advertiserID, id string) (*Campaign, error) {
	campaign, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if campaign.AdvertiserID != advertiserID {
		return nil, apperr.Forbidden("You do not own this campaign")
	}
	return campaign, nil
}

// # Creation

// CreateInput is the campaign creation payload.
type CreateInput struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	Mission             string    `json:"mission"`
	Benefits            string    `json:"benefits"`
	TargetAudience      string    `json:"targetAudience"`
	StoreName           string    `json:"storeName"`
	StoreAddress        string    `json:"storeAddress"`
	StorePhone          string    `json:"storePhone"`
	ApplicationDeadline time.Time `json:"applicationDeadline"`
	CampaignStartDate   time.Time `json:"campaignStartDate"`
	CampaignEndDate     time.Time `json:"campaignEndDate"`
	MaxParticipants     int       `json:"maxParticipants"`
}

// CreateResult is returned after a campaign is published.
type CreateResult struct {
	CampaignID string `json:"campaignId"`
	Status     Status `json:"status"`
}

func (input *CreateInput) normalize() {
	input.Title = textnorm.Clean(input.Title)
	input.Description = textnorm.Trim(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Mission = textnorm.Trim(input.Mission)
	input.Benefits = textnorm.Trim(input.Benefits)
	input.TargetAudience = textnorm.Trim(input.TargetAudience)
	input.StoreName = textnorm.Clean(input.StoreName)
	input.StoreAddress = textnorm.Clean(input.StoreAddress)
	input.StorePhone = strings.TrimSpace(input.StorePhone)
}

func (input CreateInput) validate(now time.Time) error {
	validator := &validate.Validator{}
	validator.
		Length(FieldTitle, input.Title, MinTitleLength, MaxTitleLength).
		Length(FieldDescription, input.Description, MinDescriptionLength, MaxDescriptionLength).
		OneOf(FieldCategory, input.Category, category.Names()...).
		Length(FieldMission, input.Mission, MinMissionLength, MaxMissionLength).
		Length(FieldBenefits, input.Benefits, MinBenefitsLength, MaxBenefitsLength).
		MaxLen(FieldTargetAudience, input.TargetAudience, MaxTargetAudienceLength).
		Length(FieldStoreName, input.StoreName, 1, MaxStoreNameLength).
		Length(FieldStoreAddress, input.StoreAddress, 1, MaxStoreAddressLength).
		Range(FieldMaxParticipants, input.MaxParticipants, MinParticipants, MaxParticipants)

	if input.StorePhone != "" {
		validator.Pattern(FieldStorePhone, input.StorePhone, storePhonePattern, "Must look like 02-123-4567")
	}

	// Date ordering: now < deadline < start < end.
	validator.
		Custom(FieldApplicationDeadline, !input.ApplicationDeadline.After(now), "Must be in the future").
		Custom(FieldCampaignStartDate, !input.CampaignStartDate.After(input.ApplicationDeadline), "Must be after the application deadline").
		Custom(FieldCampaignEndDate, !input.CampaignEndDate.After(input.CampaignStartDate), "Must be after the campaign start date")

	return validator.Err()
}

/*
Create publishes a campaign for the advertiser. New campaigns start
recruiting with no participants.

Returns:
  - *CreateResult: New campaign id and status
  - error: Validation, Forbidden (no advertiser profile) or persistence errors
*/
func (service *Service) Create(context context.Context, advertiserID string, input CreateInput) (*CreateResult, error) {
	input.normalize()
	if err := input.validate(service.now()); err != nil {
		return nil, err
	}

	campaign := &Campaign{
		ID:                  uuid.New(),
		AdvertiserID:        advertiserID,
		Title:               input.Title,
		Description:         input.Description,
		Category:            category.Category(input.Category),
		Mission:             input.Mission,
		Benefits:            input.Benefits,
		TargetAudience:      input.TargetAudience,
		StoreName:           input.StoreName,
		StoreAddress:        input.StoreAddress,
		StorePhone:          pointer.NonZero(input.StorePhone),
		ApplicationDeadline: input.ApplicationDeadline.UTC(),
		CampaignStartDate:   input.CampaignStartDate.UTC(),
		CampaignEndDate:     input.CampaignEndDate.UTC(),
		MaxParticipants:     input.MaxParticipants,
		CurrentParticipants: 0,
		Status:              StatusRecruiting,
	}

	if err := service.repository.Create(context, campaign); err != nil {
		return nil, err
	}

	service.metrics.RecordCampaignCreated(string(campaign.Category))
	ctxutil.GetLogger(context).Info("campaign_created",
		slog.String("campaign_id", campaign.ID),
		slog.String("advertiser_id", advertiserID),
		slog.String("category", string(campaign.Category)),
	)

	return &CreateResult{CampaignID: campaign.ID, Status: campaign.Status}, nil
}

// # Status

// ChangeStatusInput is the status change payload.
type ChangeStatusInput struct {
	Status string `json:"status"`
}

// ChangeStatusResult is returned after a status change.
type ChangeStatusResult struct {
	CampaignID string    `json:"campaignId"`
	Status     Status    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

/*
ChangeStatus moves the owner's campaign one step along its lifecycle.

Returns:
  - error: Validation (unknown status), NotFound, Forbidden (not the owner)
    or Conflict (not the next step)
*/
func (service *Service) ChangeStatus(context context.Context, advertiserID, id string, input ChangeStatusInput) (*ChangeStatusResult, error) {
	next := Status(strings.TrimSpace(input.Status))

	validator := &validate.Validator{}
	if err := validator.OneOf(FieldStatus, string(next), StatusNames()...).Err(); err != nil {
		return nil, err
	}

	campaign, err := service.findOwned(context, advertiserID, id)
	if err != nil {
		return nil, err
	}

	if !campaign.Status.CanTransitionTo(next) {
		return nil, apperr.Conflict("Campaign cannot move from " + string(campaign.Status) + " to " + string(next))
	}

	updatedAt, err := service.repository.UpdateStatus(context, id, campaign.Status, next)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("campaign_status_changed",
		slog.String("campaign_id", id),
		slog.String("from", string(campaign.Status)),
		slog.String("to", string(next)),
	)

	return &ChangeStatusResult{CampaignID: id, Status: next, UpdatedAt: updatedAt}, nil
}
