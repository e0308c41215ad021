// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import (
	"context"

	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

// # Data Access

// Repository defines the data access contract for influencer profiles.
type Repository interface {

	/*
		FindUserRole returns the role recorded on the member's user profile.

		Returns:
		  - error: NotFound if the user profile does not exist
	*/
	FindUserRole(context context.Context, userID string) (sec.UserRole, error)

	/*
		CreateWithChannels inserts the profile and all of its channels in one
		transaction. Nothing is written if any insert fails.

		Returns:
		  - error: Conflict if the member already has a profile
	*/
	CreateWithChannels(context context.Context, profile *Profile) error

	/*
		FindByUserID returns the member's profile with its channels.
	*/
	FindByUserID(context context.Context, userID string) (*Profile, error)
}
