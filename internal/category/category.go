// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category holds the business categories shared by advertiser
// profiles and campaigns.
package category

// Category classifies what an advertiser sells and what a campaign promotes.
type Category string

const (
	Food      Category = "food"
	Beauty    Category = "beauty"
	Fashion   Category = "fashion"
	Tech      Category = "tech"
	Lifestyle Category = "lifestyle"
	Other     Category = "other"
)

var all = []Category{Food, Beauty, Fashion, Tech, Lifestyle, Other}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range all {
		if c == known {
			return true
		}
	}
	return false
}

// Names lists every category as a string, in display order.
func Names() []string {
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	return names
}
