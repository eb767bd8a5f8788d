// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package overview

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for the library view.
type Handler struct {
	service *Service
}

// NewHandler constructs an overview [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /library endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getLibrary)

	return router
}

/*
GET /api/v1/library.

Description: Returns the aggregated library for the session's reader.
Anonymous readers receive the all-empty structure with HTTP 200.
*/
func (handler *Handler) getLibrary(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.UserID(request)

	library, err := handler.service.GetLibrary(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, library)
}
