// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package campaign

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

// Handler implements the HTTP layer for campaigns.
type Handler struct {
	service *Service
}

// NewHandler constructs a new campaign [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /campaigns.
//
// # Endpoints
//   - GET  /             : Public listing of recruiting campaigns.
//   - GET  /{id}         : Public detail of a recruiting campaign.
//   - POST /             : Advertiser creates a campaign.
//   - PUT  /{id}/status  : Owner advances the campaign status.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listPublic)
	router.Get("/{id}", handler.getPublic)

	// ## Advertiser
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdvertiser))
		r.Post("/", handler.create)
		r.Put("/{id}/status", handler.changeStatus)
	})

	return router
}

// OwnerRoutes returns the router mounted at /advertiser/campaigns.
func (handler *Handler) OwnerRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdvertiser))

	router.Get("/", handler.listMine)
	router.Get("/{id}", handler.getMine)

	return router
}

func listQuery(request *http.Request) ListQuery {
	return ListQuery{
		Status:   requestutil.Query(request, "status"),
		Category: requestutil.Query(request, "category"),
		Search:   requestutil.Query(request, "search"),
	}
}

/*
GET /api/v1/campaigns

Request:
  - page, limit: int
  - status: string (recruiting only)
  - category: string
  - search: string (title or description)

Response:
  - 200: ListResult
  - 400: Invalid pagination or filter
*/
func (handler *Handler) listPublic(writer http.ResponseWriter, request *http.Request) {
	page, err := pagination.FromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ListPublic(request.Context(), listQuery(request), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/campaigns/{id}

Response:
  - 200: Campaign
  - 400: Malformed id
  - 404: Absent or not recruiting
*/
func (handler *Handler) getPublic(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	campaign, err := handler.service.GetPublic(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, campaign)
}

/*
POST /api/v1/campaigns

Response:
  - 201: CreateResult
  - 400: Validation failure
  - 403: Caller has no advertiser profile
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
PUT /api/v1/campaigns/{id}/status

Response:
  - 200: ChangeStatusResult
  - 403: Not the owner
  - 409: Not the next lifecycle step
*/
func (handler *Handler) changeStatus(writer http.ResponseWriter, request *http.Request) {
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

	var input ChangeStatusInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ChangeStatus(request.Context(), userID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/advertiser/campaigns
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

	result, err := handler.service.ListMine(request.Context(), userID, listQuery(request), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/advertiser/campaigns/{id}
*/
func (handler *Handler) getMine(writer http.ResponseWriter, request *http.Request) {
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

	campaign, err := handler.service.GetMine(request.Context(), userID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, campaign)
}
