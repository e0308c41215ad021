// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advertiser

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed advertiser store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create inserts the profile. Duplicate checks are left to the unique
constraints so there is no read-then-write window.
*/
func (repository *PostgresRepository) Create(context context.Context, profile *Profile) error {
	const query = `
		INSERT INTO market.advertiser_profile (
			id, user_id, company_name, business_number, contact_name, contact_phone,
			contact_email, business_type, company_description, verification_status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.pool.QueryRow(context, query,
		profile.ID, profile.UserID, profile.CompanyName, profile.BusinessNumber,
		profile.ContactName, profile.ContactPhone, profile.ContactEmail,
		profile.BusinessType, profile.CompanyDescription, profile.VerificationStatus,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	switch {
	case err == nil:
		return nil
	case dberr.IsUniqueViolation(err, constraintUserID):
		return apperr.Conflict("Advertiser profile already exists").WithCause(err)
	case dberr.IsUniqueViolation(err, constraintBusinessNumber):
		return apperr.Conflict("Business number is already registered").WithCause(err)
	}
	return dberr.Wrap(err, "create_advertiser_profile")
}

// FindByUserID retrieves the caller's profile.
func (repository *PostgresRepository) FindByUserID(context context.Context, userID string) (*Profile, error) {
	const query = `
		SELECT
			id, user_id, company_name, business_number, contact_name, contact_phone,
			contact_email, business_type, company_description, verification_status,
			created_at, updated_at
		FROM market.advertiser_profile
		WHERE user_id = $1
	`
	profile := &Profile{}
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.CompanyName, &profile.BusinessNumber,
		&profile.ContactName, &profile.ContactPhone, &profile.ContactEmail,
		&profile.BusinessType, &profile.CompanyDescription, &profile.VerificationStatus,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Advertiser profile")
		}
		return nil, dberr.Wrap(err, "find_advertiser_profile")
	}
	return profile, nil
}
