// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package support

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for support requests.
type Handler struct {
	service *Service
}

// NewHandler constructs a support [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /support endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)

	return router
}

// submitRequest is the JSON payload of the support form.
type submitRequest struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// submitResponse acknowledges a stored request.
type submitResponse struct {
	Success bool `json:"success"`
}

/*
POST /api/v1/support.

Description: Stores a support request. Anonymous submissions are allowed.

Response:
  - 200: {success: true}
  - 400: Validation: type or body missing/invalid
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SubmitRequest(request.Context(), input.Type, input.Body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, submitResponse{Success: true})
}
