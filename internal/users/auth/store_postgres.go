// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of [AccountRepository].
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
CreateWithProfile inserts account, user profile and terms agreement in one
transaction. The deferred rollback is a no-op once Commit has succeeded.
*/
func (repository *PostgresAccountRepository) CreateWithProfile(context context.Context, account *Account, profile *UserProfile, terms *TermsAgreement) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_signup_tx")
	}
	defer transaction.Rollback(context)

	// 1. Account
	_, err = transaction.Exec(context, `
		INSERT INTO market.account (id, email, password_hash, role, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID, account.Email, account.PasswordHash, account.Role,
		account.IsVerified, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if dberr.IsUniqueViolation(err, constraintAccountEmail) {
			return apperr.Conflict("Email is already registered").WithCause(err)
		}
		return dberr.Wrap(err, "insert_account")
	}

	// 2. User profile
	_, err = transaction.Exec(context, `
		INSERT INTO market.user_profile (id, role, full_name, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		profile.UserID, profile.Role, profile.FullName, profile.PhoneNumber,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_user_profile")
	}

	// 3. Terms agreement
	_, err = transaction.Exec(context, `
		INSERT INTO market.terms_agreement (id, user_id, terms_version, agreed_at)
		VALUES ($1, $2, $3, $4)`,
		terms.ID, terms.UserID, terms.TermsVersion, terms.AgreedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_terms_agreement")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_signup_tx")
	}

	return nil
}

const selectAccount = `
	SELECT id, email, password_hash, role, is_verified, created_at, updated_at
	FROM market.account`

// FindByEmail retrieves an account by its unique email.
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	return repository.findOne(context, selectAccount+` WHERE email = $1`, email)
}

// FindByID retrieves an account by primary key.
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	return repository.findOne(context, selectAccount+` WHERE id = $1`, id)
}

func (repository *PostgresAccountRepository) findOne(context context.Context, query string, argument string) (*Account, error) {
	account := &Account{}
	err := repository.pool.QueryRow(context, query, argument).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, dberr.Wrap(err, "find_account")
	}
	return account, nil
}

// FindProfile retrieves the user profile owned by an account.
func (repository *PostgresAccountRepository) FindProfile(context context.Context, userID string) (*UserProfile, error) {
	const query = `
		SELECT id, role, full_name, phone_number, created_at, updated_at
		FROM market.user_profile
		WHERE id = $1`

	profile := &UserProfile{}
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&profile.UserID,
		&profile.Role,
		&profile.FullName,
		&profile.PhoneNumber,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User profile")
		}
		return nil, dberr.Wrap(err, "find_user_profile")
	}
	return profile, nil
}
