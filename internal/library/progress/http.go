// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libraryofui/uilib/internal/platform/middleware"
	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
	"github.com/libraryofui/uilib/internal/platform/validate"
)

// Handler implements the HTTP layer for reading progress.
type Handler struct {
	service *Service
}

// NewHandler constructs a progress [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /last-read endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)
	router.With(middleware.RequireAuth).Post("/", handler.record)

	return router
}

// recordRequest is the JSON payload for progress samples.
//
// ScrollPosition is a pointer so that "absent" and "zero" are distinguishable.
type recordRequest struct {
	EpisodeID      string   `json:"episode_id"`
	ScrollPosition *float64 `json:"scroll_position"`
}

// recordResponse acknowledges a progress sample.
type recordResponse struct {
	Success bool `json:"success"`
}

// positionResponse carries a single episode's stored scroll position.
type positionResponse struct {
	ScrollPosition *int `json:"scroll_position"`
}

/*
POST /api/v1/last-read.

Description: Records a scroll-position sample for the authenticated reader.

Response:
  - 200: {success: true} (also for samples above the tracking threshold)
  - 400: Validation: episode_id or scroll_position missing/invalid
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) record(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input recordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.ScrollPosition == nil {
		respond.Error(writer, request, validate.RequiredError("scroll_position", "Must be a number"))
		return
	}

	if err := handler.service.RecordProgress(request.Context(), userID, input.EpisodeID, *input.ScrollPosition); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, recordResponse{Success: true})
}

/*
GET /api/v1/last-read?episode_id=... | ?novel_id=...

Description: With episode_id, returns that episode's stored scroll position
(null for anonymous readers or untracked episodes). With novel_id, returns the
reading history for that novel. One of the two parameters is required.
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	episodeID := requestutil.Query(request, "episode_id")
	novelID := requestutil.Query(request, "novel_id")

	if episodeID == "" && novelID == "" {
		respond.Error(writer, request, validate.RequiredError("episode_id", "Either episode_id or novel_id is required"))
		return
	}

	userID := requestutil.UserID(request)

	if episodeID != "" {
		position, err := handler.service.GetProgress(request.Context(), userID, episodeID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, positionResponse{ScrollPosition: position})
		return
	}

	history, err := handler.service.GetHistory(request.Context(), userID, novelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, history)
}
