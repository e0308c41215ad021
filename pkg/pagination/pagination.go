// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 50
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage keeps (page-1)*limit within a 32-bit OFFSET at any allowed limit.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is ceil(total / limit); zero when there is nothing to page through.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// Missing values fall back to [DefaultPage] and [DefaultLimit]. Present but
// malformed or out-of-range values are a VALIDATION_ERROR: page must be within
// [1, MaxPage] and limit within [1, MaxLimit].
func FromRequest(r *http.Request) (Params, error) {
	var fieldErrors []apperr.FieldError

	page, ok := parseIntParam(r, "page", DefaultPage)
	if !ok || page < 1 || page > MaxPage {
		fieldErrors = append(fieldErrors, apperr.FieldError{Field: "page", Message: "Must be between 1 and " + strconv.Itoa(MaxPage)})
	}

	limit, ok := parseIntParam(r, "limit", DefaultLimit)
	if !ok || limit < 1 || limit > MaxLimit {
		fieldErrors = append(fieldErrors, apperr.FieldError{Field: "limit", Message: "Must be between 1 and " + strconv.Itoa(MaxLimit)})
	}

	if len(fieldErrors) > 0 {
		return Params{}, apperr.ValidationError("Invalid pagination parameters", fieldErrors...)
	}

	return Params{Page: page, Limit: limit}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
// ok is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return n, true
}
