// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/campaignhub/internal/influencer"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

/*
TestAgeOn checks the boundary around the 18th birthday, including leap days.
*/
func TestAgeOn(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		on    time.Time
		want  int
	}{
		{"exactly_18", date(2006, time.October, 18), date(2024, time.October, 18), 18},
		{"one_day_short", date(2006, time.October, 19), date(2024, time.October, 18), 17},
		{"month_not_reached", date(2006, time.November, 1), date(2024, time.October, 18), 17},
		{"month_passed", date(2006, time.January, 31), date(2024, time.October, 18), 18},
		{"leap_birthday_on_feb_28_common_year", date(2004, time.February, 29), date(2022, time.February, 28), 17},
		{"leap_birthday_on_mar_1_common_year", date(2004, time.February, 29), date(2022, time.March, 1), 18},
		{"leap_birthday_on_feb_29_leap_year", date(2008, time.February, 29), date(2026, time.February, 28), 17},
		{"born_today", date(2024, time.October, 18), date(2024, time.October, 18), 0},
		{"future_birth", date(2030, time.January, 1), date(2024, time.October, 18), -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, influencer.AgeOn(tt.birth, tt.on))
		})
	}
}

// TestAgeOn_DayBeforeEighteenth flips to 18 on the birthday itself.
func TestAgeOn_DayBeforeEighteenth(t *testing.T) {
	on := date(2025, time.June, 10)
	birth := date(2007, time.June, 11)

	assert.Equal(t, 17, influencer.AgeOn(birth, on))
	assert.Equal(t, 18, influencer.AgeOn(birth, on.AddDate(0, 0, 1)))
}
