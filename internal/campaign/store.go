// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package campaign

import (
	"context"
	"time"
)

// # Data Access

// Repository defines the data access contract for campaigns.
type Repository interface {

	/*
		List returns one page of campaigns matching filter, newest first, and the
		total number of matches.

		Returns:
		  - []*Campaign: At most limit campaigns with the advertiser summary joined
		  - int: Total matching rows ignoring limit and offset
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Campaign, int, error)

	/*
		FindByID returns a campaign in any status.

		Returns:
		  - error: NotFound if absent
	*/
	FindByID(context context.Context, id string) (*Campaign, error)

	/*
		Create inserts a campaign.

		Returns:
		  - error: Forbidden if the owner has no advertiser profile
	*/
	Create(context context.Context, campaign *Campaign) error

	/*
		UpdateStatus moves the campaign from one status to the next. The update
		only applies while the stored status still equals from.

		Returns:
		  - time.Time: New updated_at
		  - error: Conflict if the status changed underneath
	*/
	UpdateStatus(context context.Context, id string, from, to Status) (time.Time, error)
}
