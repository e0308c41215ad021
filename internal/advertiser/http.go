// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advertiser

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/campaignhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/campaignhub/internal/platform/request"
	"github.com/taibuivan/campaignhub/internal/platform/respond"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

// Handler implements the advertiser profile endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new advertiser [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /advertiser/profile.
// Every route requires the advertiser role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdvertiser))

	router.Post("/", handler.createProfile)
	router.Get("/", handler.getProfile)

	return router
}

/*
POST /api/v1/advertiser/profile

Response:
  - 201: CreateProfileResult
  - 400: Validation failure
  - 409: Profile exists or business number taken
*/
func (handler *Handler) createProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateProfileInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CreateProfile(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

/*
GET /api/v1/advertiser/profile
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
