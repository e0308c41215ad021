// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"context"

	"github.com/taibuivan/campaignhub/internal/campaign"
)

// # Data Access

// CampaignReader is the slice of the campaign store the application flow needs.
type CampaignReader interface {
	FindByID(context context.Context, id string) (*campaign.Campaign, error)
}

// Repository defines the data access contract for applications.
type Repository interface {

	/*
		Exists reports whether the user already applied to the campaign.
	*/
	Exists(context context.Context, userID, campaignID string) (bool, error)

	/*
		Create inserts a pending application.

		Returns:
		  - error: Conflict when the (user, campaign) pair already exists
	*/
	Create(context context.Context, application *Application) error

	/*
		FindByID returns a single application.

		Returns:
		  - error: NotFound if absent
	*/
	FindByID(context context.Context, id string) (*Application, error)

	/*
		ListByUser returns one page of the user's applications, newest first.
		An empty status lists every status.
	*/
	ListByUser(context context.Context, userID string, status Status, limit, offset int) ([]*Submitted, int, error)

	/*
		ListByCampaign returns one page of a campaign's applications with the
		applicant's name and email, newest first.
	*/
	ListByCampaign(context context.Context, campaignID string, status Status, limit, offset int) ([]*Received, int, error)

	/*
		Apply executes the transition atomically.

		Returns:
		  - *Application: The row after the change
		  - error: Conflict if the status moved on or the campaign has no free slot
	*/
	Apply(context context.Context, transition Transition) (*Application, error)
}
