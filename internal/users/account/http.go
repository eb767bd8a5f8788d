// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libraryofui/uilib/internal/platform/middleware"
	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for account data removal.
type Handler struct {
	service *Service
}

// NewHandler constructs an account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /account endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireAuth).Delete("/", handler.deleteData)

	return router
}

/*
DELETE /api/v1/account.

Description: Removes the authenticated reader's marks and progress rows.

Response:
  - 200: DeletionReport
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) deleteData(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.DeleteData(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}
