// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// AccountRepository defines the data access contract for accounts and profiles.
type AccountRepository interface {

	/*
		CreateWithProfile persists the account, its user profile and the terms
		agreement atomically. Nothing is written if any insert fails.

		Returns:
		  - error: Conflict when the email is taken, persistence failures otherwise
	*/
	CreateWithProfile(context context.Context, account *Account, profile *UserProfile, terms *TermsAgreement) error

	/*
		FindByEmail returns the account registered with the given email.

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or database errors
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindByID returns the account with the given ID.
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindProfile returns the user profile owned by the account.
	*/
	FindProfile(context context.Context, userID string) (*UserProfile, error)
}

// # Session Data Access

// SessionRepository stores refresh sessions keyed by token digest.
type SessionRepository interface {

	/*
		Create stores a session that expires after ttl.
	*/
	Create(context context.Context, session *Session, ttl time.Duration) error

	/*
		FindByTokenHash returns the live session for the digest.

		Returns:
		  - error: NotFound if the session is absent or expired
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	/*
		Delete removes the session. Deleting an absent session is not an error.
	*/
	Delete(context context.Context, tokenHash string) error
}
