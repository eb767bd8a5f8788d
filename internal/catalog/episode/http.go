// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for episode content.
type Handler struct {
	service *Service
}

// NewHandler constructs an episode [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /episodes endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}/content", handler.getContent)

	return router
}

/*
GET /api/v1/episodes/{id}/content.

Description: Returns the normalized episode body, from cache when warm.

Response:
  - 200: Content
  - 400: Validation: malformed id
  - 404: ErrNotFound: unknown episode
  - 502: UPSTREAM_FAILED: content host unavailable
*/
func (handler *Handler) getContent(writer http.ResponseWriter, request *http.Request) {
	episodeID := requestutil.ID(request, "id")

	content, err := handler.service.GetContent(request.Context(), episodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, content)
}
