// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package influencer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/campaignhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/campaignhub/internal/platform/request"
	"github.com/taibuivan/campaignhub/internal/platform/respond"
)

// Handler implements the influencer profile endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new influencer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /influencer/profile.
//
// The role is checked against the stored user profile by the service, so the
// router only requires a signed-in caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.createProfile)
	router.Get("/", handler.getProfile)

	return router
}

/*
POST /api/v1/influencer/profile

Response:
  - 201: CreateProfileResult
  - 400: Validation failure (including the age gate)
  - 403: Caller is not an influencer
  - 404: Caller has no user profile
  - 409: Profile already exists
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
GET /api/v1/influencer/profile
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
