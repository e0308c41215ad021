// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package application

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/campaignhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/campaignhub/internal/platform/request"
	"github.com/taibuivan/campaignhub/internal/platform/respond"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
	"github.com/taibuivan/campaignhub/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for applications.
type Handler struct {
	service *Service
}

// NewHandler constructs a new application [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /applications.
//
// # Endpoints
//   - POST /               : Influencer applies.
//   - GET  /               : Influencer lists own applications.
//   - POST /{id}/withdraw  : Influencer withdraws a pending application.
//   - PUT  /{id}/status    : Campaign owner approves or rejects.
//   - POST /{id}/reopen    : Campaign owner reopens a decided application.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Applicant
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleInfluencer))
		r.Post("/", handler.create)
		r.Get("/", handler.listMine)
		r.Post("/{id}/withdraw", handler.withdraw)
	})

	// ## Campaign Owner
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdvertiser))
		r.Put("/{id}/status", handler.review)
		r.Post("/{id}/reopen", handler.reopen)
	})

	return router
}

// CampaignRoutes returns the router mounted at /campaigns/{campaignId}/applications.
func (handler *Handler) CampaignRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdvertiser))

	router.Get("/", handler.listForCampaign)

	return router
}

/*
POST /api/v1/applications

Response:
  - 201: CreateResult
  - 400: Validation failure, deadline passed or campaign full
  - 404: Campaign absent or not recruiting
  - 409: Already applied
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

/*
GET /api/v1/applications

Request:
  - page, limit: int
  - status: string
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ListMine(request.Context(), userID, requestutil.Query(request, "status"), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/campaigns/{campaignId}/applications

Response:
  - 200: ListResult of applications with applicant name and email
  - 403: Not the campaign owner
  - 404: Campaign absent
*/
func (handler *Handler) listForCampaign(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	campaignID, err := requestutil.UUIDParam(request, "campaignId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ListForCampaign(request.Context(), userID, campaignID, requestutil.Query(request, "status"), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
PUT /api/v1/applications/{id}/status

Response:
  - 200: ReviewResult
  - 403: Not the campaign owner
  - 409: Already decided or campaign full
*/
func (handler *Handler) review(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ReviewInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Review(request.Context(), userID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/applications/{id}/reopen
*/
func (handler *Handler) reopen(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Reopen(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/applications/{id}/withdraw
*/
func (handler *Handler) withdraw(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Withdraw(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
