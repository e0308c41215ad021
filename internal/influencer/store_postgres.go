// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/dberr"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed influencer store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindUserRole reads the role column of the member's user profile.
func (repository *PostgresRepository) FindUserRole(context context.Context, userID string) (sec.UserRole, error) {
	var role sec.UserRole
	err := repository.pool.QueryRow(context, `SELECT role FROM market.user_profile WHERE id = $1`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("User profile")
		}
		return "", dberr.Wrap(err, "find_user_role")
	}
	return role, nil
}

/*
CreateWithChannels writes the profile row then one row per channel. The
channel inserts are queued on a single [pgx.Batch] inside the transaction.
*/
func (repository *PostgresRepository) CreateWithChannels(context context.Context, profile *Profile) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_influencer_tx")
	}
	defer transaction.Rollback(context)

	// 1. Profile
	err = transaction.QueryRow(context, `
		INSERT INTO market.influencer_profile (id, user_id, birth_date, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`,
		profile.ID, profile.UserID, profile.BirthDate, profile.IsVerified,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberr.IsUniqueViolation(err, constraintUserID) {
			return apperr.Conflict("Influencer profile already exists").WithCause(err)
		}
		return dberr.Wrap(err, "insert_influencer_profile")
	}

	// 2. Channels
	batch := &pgx.Batch{}
	for _, channel := range profile.Channels {
		batch.Queue(`
			INSERT INTO market.influencer_channel (
				id, profile_id, user_id, platform, channel_name, channel_url,
				follower_count, verification_status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			RETURNING created_at`,
			channel.ID, profile.ID, profile.UserID, channel.Platform, channel.ChannelName,
			channel.ChannelURL, channel.FollowerCount, channel.VerificationStatus,
		)
	}

	results := transaction.SendBatch(context, batch)
	for _, channel := range profile.Channels {
		if err := results.QueryRow().Scan(&channel.CreatedAt); err != nil {
			results.Close()
			return dberr.Wrap(err, "insert_influencer_channel")
		}
	}
	if err := results.Close(); err != nil {
		return dberr.Wrap(err, "insert_influencer_channel")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_influencer_tx")
	}

	return nil
}

// FindByUserID loads the profile and then its channels, oldest first.
func (repository *PostgresRepository) FindByUserID(context context.Context, userID string) (*Profile, error) {
	profile := &Profile{}
	err := repository.pool.QueryRow(context, `
		SELECT id, user_id, birth_date, is_verified, created_at, updated_at
		FROM market.influencer_profile
		WHERE user_id = $1`, userID,
	).Scan(&profile.ID, &profile.UserID, &profile.BirthDate, &profile.IsVerified, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Influencer profile")
		}
		return nil, dberr.Wrap(err, "find_influencer_profile")
	}

	rows, err := repository.pool.Query(context, `
		SELECT id, profile_id, user_id, platform, channel_name, channel_url,
			follower_count, verification_status, created_at
		FROM market.influencer_channel
		WHERE profile_id = $1
		ORDER BY created_at ASC, id ASC`, profile.ID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "list_influencer_channels")
	}
	defer rows.Close()

	for rows.Next() {
		channel := &Channel{}
		err := rows.Scan(
			&channel.ID, &channel.ProfileID, &channel.UserID, &channel.Platform, &channel.ChannelName,
			&channel.ChannelURL, &channel.FollowerCount, &channel.VerificationStatus, &channel.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_influencer_channel")
		}
		profile.Channels = append(profile.Channels, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_influencer_channels")
	}

	return profile, nil
}
