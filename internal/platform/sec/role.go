// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole is the side of the marketplace an account signed up for.
type UserRole string

const (
	// Applies to campaigns and maintains a channel portfolio
	RoleInfluencer UserRole = "influencer"

	// Owns a company profile and publishes campaigns
	RoleAdvertiser UserRole = "advertiser"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleInfluencer, RoleAdvertiser:
		return true
	}
	return false
}

// In reports whether r matches any of the allowed roles.
//
// Roles are disjoint, so there is no hierarchy: an advertiser is never an
// influencer and vice versa.
func (r UserRole) In(allowed ...UserRole) bool {
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}

// RoleNames lists the accepted role strings for validation messages.
func RoleNames() []string {
	return []string{string(RoleInfluencer), string(RoleAdvertiser)}
}
