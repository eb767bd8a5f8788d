// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package notice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for notices.
type Handler struct {
	service *Service
}

// NewHandler constructs a notice [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /notices endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	return router
}

// GET /api/v1/notices returns the active announcements, newest first.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	notices, err := handler.service.ListNotices(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, notices)
}
