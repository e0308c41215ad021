// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import "time"

/*
AgeOn returns the age in whole years of someone born on birth, as of the
calendar date of on.

The year difference is reduced by one when the birthday has not yet come
around this year. Comparing (month, day) pairs means a Feb 29 birthday is
reached on Mar 1 in common years.

Both arguments are compared by their own calendar fields; callers pass them
in the same location.
*/
func AgeOn(birth, on time.Time) int {
	age := on.Year() - birth.Year()

	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}

	return age
}
