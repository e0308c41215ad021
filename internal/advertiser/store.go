// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advertiser

import "context"

// # Data Access

// Repository defines the data access contract for advertiser profiles.
type Repository interface {

	/*
		Create inserts the profile in a single statement.

		Returns:
		  - error: Conflict if the user already has a profile or the business
		    number is taken; persistence failures otherwise
	*/
	Create(context context.Context, profile *Profile) error

	/*
		FindByUserID returns the profile owned by the account.

		Returns:
		  - *Profile: Hydrated entity
		  - error: NotFound if the account has no profile
	*/
	FindByUserID(context context.Context, userID string) (*Profile, error)
}
