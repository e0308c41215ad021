// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "regexp"

// # Signup Constraints

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 8

	// MaxPasswordBytes is the bcrypt input limit, counted in bytes.
	MaxPasswordBytes = 72

	// Full name bounds in characters.
	MinFullNameLength = 2
	MaxFullNameLength = 100
)

// phonePattern accepts Korean mobile numbers without separators (010xxxxxxxx).
var phonePattern = regexp.MustCompile(`^01[0-9]{8,9}$`)

// Unique constraints surfaced as Conflict.
const (
	constraintAccountEmail = "account_email_key"
)
