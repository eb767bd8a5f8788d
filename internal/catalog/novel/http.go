// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package novel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
	"github.com/libraryofui/uilib/pkg/pagination"
)

// Handler implements the HTTP layer for the novel catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalogue [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the /novels endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	return router
}

/*
GET /api/v1/novels?q=...&page=...&limit=...

Description: Lists the catalogue newest first, optionally narrowed by keyword.

Response:
  - 200: Paginated envelope of novel summaries
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	keyword := requestutil.Query(request, "q")

	novels, meta, err := handler.service.ListNovels(request.Context(), keyword, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, novels, meta)
}

/*
GET /api/v1/novels/{id}.

Description: Returns the novel detail with ordered seasons and episodes. The
bookmark flags follow the session's reader when one is present.

Response:
  - 200: Detail
  - 400: Validation: malformed id
  - 404: ErrNotFound: unknown novel
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	novelID := requestutil.ID(request, "id")
	userID := requestutil.UserID(request)

	detail, err := handler.service.GetNovel(request.Context(), novelID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}
