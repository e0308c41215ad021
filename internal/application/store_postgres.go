// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed application store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const applicationColumns = `
	a.id, a.user_id, a.campaign_id, a.motivation, a.experience, a.expected_outcome,
	a.status, a.feedback, a.reviewed_at, a.created_at, a.updated_at`

func applicationDestinations(application *Application) []any {
	return []any{
		&application.ID, &application.UserID, &application.CampaignID, &application.Motivation,
		&application.Experience, &application.ExpectedOutcome, &application.Status,
		&application.Feedback, &application.ReviewedAt, &application.SubmittedAt, &application.UpdatedAt,
	}
}

// # Retrieval

// Exists is the duplicate point lookup run before insert.
func (repository *PostgresRepository) Exists(context context.Context, userID, campaignID string) (bool, error) {
	var exists bool
	err := repository.pool.QueryRow(context, `
		SELECT EXISTS (SELECT 1 FROM market.application WHERE user_id = $1 AND campaign_id = $2)`,
		userID, campaignID,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, "exists_application")
	}
	return exists, nil
}

// FindByID retrieves a single application.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Application, error) {
	application := &Application{}
	err := repository.pool.QueryRow(context,
		`SELECT`+applicationColumns+` FROM market.application a WHERE a.id = $1`, id,
	).Scan(applicationDestinations(application)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Application")
		}
		return nil, dberr.Wrap(err, "get_application_by_id")
	}
	return application, nil
}

/*
ListByUser joins the campaign title onto the caller's applications.
*/
func (repository *PostgresRepository) ListByUser(context context.Context, userID string, status Status, limit, offset int) ([]*Submitted, int, error) {
	where, args := scopedFilter("a.user_id", userID, status)
	from := ` FROM market.application a JOIN market.campaign c ON c.id = a.campaign_id` + where

	query := `SELECT` + applicationColumns + `, c.title, COUNT(*) OVER() AS total` + from +
		fmt.Sprintf(" ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_user_applications")
	}
	defer rows.Close()

	items := []*Submitted{}
	var total int
	for rows.Next() {
		item := &Submitted{Application: &Application{}}
		if err := rows.Scan(append(applicationDestinations(item.Application), &item.CampaignTitle, &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user_application")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_user_applications")
	}

	if len(items) == 0 && offset > 0 {
		if total, err = repository.count(context, from, args); err != nil {
			return nil, 0, err
		}
	}

	return items, total, nil
}

/*
ListByCampaign joins the applicant's display name and login email.
*/
func (repository *PostgresRepository) ListByCampaign(context context.Context, campaignID string, status Status, limit, offset int) ([]*Received, int, error) {
	where, args := scopedFilter("a.campaign_id", campaignID, status)
	from := `
		FROM market.application a
		JOIN market.account acc ON acc.id = a.user_id
		JOIN market.user_profile up ON up.id = a.user_id` + where

	query := `SELECT` + applicationColumns + `, up.full_name, acc.email, COUNT(*) OVER() AS total` + from +
		fmt.Sprintf(" ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_campaign_applications")
	}
	defer rows.Close()

	items := []*Received{}
	var total int
	for rows.Next() {
		item := &Received{Application: &Application{}}
		if err := rows.Scan(append(applicationDestinations(item.Application), &item.ApplicantName, &item.ApplicantEmail, &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_campaign_application")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_campaign_applications")
	}

	if len(items) == 0 && offset > 0 {
		if total, err = repository.count(context, from, args); err != nil {
			return nil, 0, err
		}
	}

	return items, total, nil
}

// scopedFilter renders "WHERE column = $1 [AND a.status = $2]".
func scopedFilter(column, value string, status Status) (string, []any) {
	where := fmt.Sprintf(" WHERE %s = $1", column)
	args := []any{value}

	if status != "" {
		where += " AND a.status = $2"
		args = append(args, status)
	}
	return where, args
}

// count totals a listing whose requested page is past the end.
func (repository *PostgresRepository) count(context context.Context, from string, args []any) (int, error) {
	var total int
	if err := repository.pool.QueryRow(context, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_applications")
	}
	return total, nil
}

// # Mutation

/*
Create inserts a pending application. The unique (user_id, campaign_id)
constraint backs up the duplicate lookup when two requests race.
*/
func (repository *PostgresRepository) Create(context context.Context, application *Application) error {
	const query = `
		INSERT INTO market.application (
			id, user_id, campaign_id, motivation, experience, expected_outcome,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := repository.pool.QueryRow(context, query,
		application.ID, application.UserID, application.CampaignID, application.Motivation,
		application.Experience, application.ExpectedOutcome, application.Status,
	).Scan(&application.SubmittedAt, &application.UpdatedAt)

	if err != nil && dberr.IsUniqueViolation(err, constraintUserCampaign) {
		return apperr.Conflict("You have already applied to this campaign").WithCause(err)
	}
	return dberr.Wrap(err, "create_application")
}

/*
Apply runs a status transition and its participant adjustment in one
transaction.

Steps:
 1. Update the application only if its status still equals From.
 2. Move the campaign's participant count by ParticipantDelta, never above
    max_participants nor below zero.
*/
func (repository *PostgresRepository) Apply(context context.Context, transition Transition) (*Application, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_application_tx")
	}
	defer transaction.Rollback(context)

	// 1. Guarded status change
	application := &Application{}
	err = transaction.QueryRow(context, `
		UPDATE market.application a
		SET status = $3, feedback = $4, reviewed_at = $5, updated_at = $6
		WHERE a.id = $1 AND a.status = $2
		RETURNING`+applicationColumns,
		transition.ApplicationID, transition.From, transition.To,
		transition.Feedback, transition.ReviewedAt, transition.At,
	).Scan(applicationDestinations(application)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Conflict("Application status was changed by another request")
		}
		return nil, dberr.Wrap(err, "update_application_status")
	}

	// 2. Participant slots
	switch {
	case transition.ParticipantDelta > 0:
		tag, err := transaction.Exec(context, `
			UPDATE market.campaign
			SET current_participants = current_participants + 1, updated_at = $2
			WHERE id = $1 AND current_participants < max_participants`,
			transition.CampaignID, transition.At,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "take_participant_slot")
		}
		if tag.RowsAffected() == 0 {
			return nil, apperr.Conflict("The campaign has no remaining participant slots")
		}
	case transition.ParticipantDelta < 0:
		_, err := transaction.Exec(context, `
			UPDATE market.campaign
			SET current_participants = current_participants - 1, updated_at = $2
			WHERE id = $1 AND current_participants > 0`,
			transition.CampaignID, transition.At,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "release_participant_slot")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_application_tx")
	}

	return application, nil
}
