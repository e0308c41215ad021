// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
//   - pgx.ErrNoRows              → NOT_FOUND
//   - 23505 unique_violation     → CONFLICT
//   - 23503 foreign_key_violation → NOT_FOUND (the referenced row is missing)
//   - 23514 check_violation      → CONFLICT
//   - anything else              → PERSISTENCE_ERROR
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that are already [*apperr.AppError] are returned unchanged.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource").WithCause(fmt.Errorf("%s: %w", action, err))
	}

	// 2. Constraint violations
	switch SQLState(err) {
	case pgerrcode.UniqueViolation:
		return apperr.Conflict("Resource already exists").WithCause(fmt.Errorf("%s: %w", action, err))
	case pgerrcode.ForeignKeyViolation:
		return apperr.NotFound("Referenced resource").WithCause(fmt.Errorf("%s: %w", action, err))
	case pgerrcode.CheckViolation:
		return apperr.Conflict("Operation violates a data constraint").WithCause(fmt.Errorf("%s: %w", action, err))
	}

	// 3. Unknown query errors become persistence failures
	return apperr.Persistence(fmt.Errorf("%s: %w", action, err))
}

// SQLState returns the Postgres SQLSTATE carried by err, or "" if err did not
// come from the server.
func SQLState(err error) string {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// When constraint is non-empty the violated constraint name must match as well.
func IsUniqueViolation(err error, constraint string) bool {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) || pgError.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgError.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == pgerrcode.ForeignKeyViolation
}
