// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/dberr"
	"github.com/taibuivan/campaignhub/pkg/textnorm"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed campaign store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectCampaign = `
	SELECT
		c.id, c.advertiser_id, c.title, c.description, c.category, c.mission,
		c.benefits, c.target_audience, c.store_name, c.store_address, c.store_phone,
		c.application_deadline, c.campaign_start_date, c.campaign_end_date,
		c.max_participants, c.current_participants, c.status, c.created_at, c.updated_at,
		ap.company_name, ap.business_type`

const fromCampaign = `
	FROM market.campaign c
	JOIN market.advertiser_profile ap ON ap.user_id = c.advertiser_id`

// # Campaign Retrieval

/*
buildFilter renders the WHERE clause for filter with positional placeholders.

Returns:
  - string: Clause starting with " WHERE"
  - []any: Arguments in placeholder order
*/
func buildFilter(filter Filter) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(" WHERE TRUE")

	args := []any{}
	argID := 1

	if filter.AdvertiserID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.advertiser_id = $%d", argID))
		args = append(args, filter.AdvertiserID)
		argID++
	}

	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.status = $%d", argID))
		args = append(args, filter.Status)
		argID++
	}

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.category = $%d", argID))
		args = append(args, filter.Category)
		argID++
	}

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (c.title ILIKE $%d OR c.description ILIKE $%d)", argID, argID))
		args = append(args, textnorm.LikePattern(filter.Search))
	}

	return queryBuilder.String(), args
}

// buildListQuery renders one page of the listing. COUNT(*) OVER() carries the
// total on every row.
func buildListQuery(filter Filter, limit, offset int) (string, []any) {
	where, args := buildFilter(filter)
	argID := len(args) + 1

	query := selectCampaign + `, COUNT(*) OVER() AS total` + fromCampaign + where +
		fmt.Sprintf(" ORDER BY c.created_at DESC, c.id DESC LIMIT $%d OFFSET $%d", argID, argID+1)

	return query, append(args, limit, offset)
}

/*
List returns a filtered and paginated list of campaigns.

Description: A page past the end has no row to carry the window total, so the
total is counted separately in that case.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Campaign, int, error) {
	query, args := buildListQuery(filter, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_campaigns")
	}
	defer rows.Close()

	campaigns := []*Campaign{}
	var total int
	for rows.Next() {
		campaign, err := scanCampaign(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_campaign")
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_campaigns")
	}

	if len(campaigns) == 0 && offset > 0 {
		where, countArgs := buildFilter(filter)
		err := repository.pool.QueryRow(context, `SELECT COUNT(*)`+fromCampaign+where, countArgs...).Scan(&total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "count_campaigns")
		}
	}

	return campaigns, total, nil
}

// FindByID retrieves a single campaign with its advertiser summary.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Campaign, error) {
	row := repository.pool.QueryRow(context, selectCampaign+fromCampaign+` WHERE c.id = $1`, id)

	campaign, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Campaign")
		}
		return nil, dberr.Wrap(err, "get_campaign_by_id")
	}
	return campaign, nil
}

// scanCampaign reads one selectCampaign row. Extra destinations (the window
// total) are appended after the fixed columns.
func scanCampaign(row pgx.Row, extra ...any) (*Campaign, error) {
	campaign := &Campaign{Advertiser: &AdvertiserSummary{}}

	destinations := []any{
		&campaign.ID, &campaign.AdvertiserID, &campaign.Title, &campaign.Description, &campaign.Category, &campaign.Mission,
		&campaign.Benefits, &campaign.TargetAudience, &campaign.StoreName, &campaign.StoreAddress, &campaign.StorePhone,
		&campaign.ApplicationDeadline, &campaign.CampaignStartDate, &campaign.CampaignEndDate,
		&campaign.MaxParticipants, &campaign.CurrentParticipants, &campaign.Status, &campaign.CreatedAt, &campaign.UpdatedAt,
		&campaign.Advertiser.CompanyName, &campaign.Advertiser.BusinessType,
	}

	if err := row.Scan(append(destinations, extra...)...); err != nil {
		return nil, err
	}
	return campaign, nil
}

// # Campaign Mutation

/*
Create inserts a new campaign. A missing advertiser profile surfaces as a
foreign key violation on advertiser_id.
*/
func (repository *PostgresRepository) Create(context context.Context, campaign *Campaign) error {
	const query = `
		INSERT INTO market.campaign (
			id, advertiser_id, title, description, category, mission, benefits,
			target_audience, store_name, store_address, store_phone,
			application_deadline, campaign_start_date, campaign_end_date,
			max_participants, current_participants, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.pool.QueryRow(context, query,
		campaign.ID, campaign.AdvertiserID, campaign.Title, campaign.Description, campaign.Category,
		campaign.Mission, campaign.Benefits, campaign.TargetAudience, campaign.StoreName,
		campaign.StoreAddress, campaign.StorePhone, campaign.ApplicationDeadline,
		campaign.CampaignStartDate, campaign.CampaignEndDate, campaign.MaxParticipants,
		campaign.CurrentParticipants, campaign.Status,
	).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)

	if err != nil && dberr.IsForeignKeyViolation(err) {
		return apperr.Forbidden("Advertiser profile required").WithCause(err)
	}
	return dberr.Wrap(err, "create_campaign")
}

// UpdateStatus applies a guarded status change.
func (repository *PostgresRepository) UpdateStatus(context context.Context, id string, from, to Status) (time.Time, error) {
	const query = `
		UPDATE market.campaign
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING updated_at
	`
	var updatedAt time.Time
	err := repository.pool.QueryRow(context, query, id, from, to).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperr.Conflict("Campaign status was changed by another request")
		}
		return time.Time{}, dberr.Wrap(err, "update_campaign_status")
	}
	return updatedAt, nil
}
