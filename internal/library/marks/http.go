// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package marks

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/libraryofui/uilib/internal/platform/middleware"
	requestutil "github.com/libraryofui/uilib/internal/platform/request"
	"github.com/libraryofui/uilib/internal/platform/respond"
)

// Handler implements the HTTP layer for bookmark and favourite marks.
type Handler struct {
	service *Service
}

// NewHandler constructs a marks [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BookmarkRoutes returns a [chi.Router] for the /bookmarks endpoints.
func (handler *Handler) BookmarkRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getBookmarkStatus)
	router.Get("/list", handler.listBookmarks)
	router.With(middleware.RequireAuth).Post("/", handler.toggleBookmark)

	return router
}

// FavouriteRoutes returns a [chi.Router] for the /favourites endpoints.
func (handler *Handler) FavouriteRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getFavouriteStatus)
	router.With(middleware.RequireAuth).Post("/", handler.toggleFavourite)

	return router
}

// bookmarkToggleRequest is the JSON payload for a bookmark flip.
type bookmarkToggleRequest struct {
	EpisodeID string `json:"episode_id"`
}

// favouriteToggleRequest is the JSON payload for a favourite flip.
type favouriteToggleRequest struct {
	NovelID string `json:"novel_id"`
}

/*
POST /api/v1/bookmarks.

Description: Flips the bookmark state for the authenticated reader and returns
the resulting state.

Response:
  - 200: {isBookmarked: bool}
  - 400: Validation: episode_id missing
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) toggleBookmark(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input bookmarkToggleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarked, err := handler.service.ToggleBookmark(request.Context(), userID, input.EpisodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, BookmarkStatus{IsBookmarked: bookmarked})
}

/*
GET /api/v1/bookmarks?episode_id=...

Description: Reports whether the reader has bookmarked the episode. Anonymous
readers always read false.
*/
func (handler *Handler) getBookmarkStatus(writer http.ResponseWriter, request *http.Request) {
	episodeID, err := requestutil.RequiredQuery(request, "episode_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID := requestutil.UserID(request)

	bookmarked, err := handler.service.GetBookmarkStatus(request.Context(), userID, episodeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, BookmarkStatus{IsBookmarked: bookmarked})
}

/*
GET /api/v1/bookmarks/list.

Description: Returns the flat list of the reader's bookmarked episode ids.
Anonymous readers receive the empty list.
*/
func (handler *Handler) listBookmarks(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.UserID(request)

	list, err := handler.service.ListBookmarkedEpisodes(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list)
}

/*
POST /api/v1/favourites.

Description: Flips the favourite state for the authenticated reader and
returns the resulting state.

Response:
  - 200: {isFavourited: bool}
  - 400: Validation: novel_id missing
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) toggleFavourite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input favouriteToggleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	favourited, err := handler.service.ToggleFavourite(request.Context(), userID, input.NovelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, FavouriteStatus{IsFavourited: favourited})
}

/*
GET /api/v1/favourites?novel_id=...

Description: Reports whether the reader has favourited the novel. Anonymous
readers always read false.
*/
func (handler *Handler) getFavouriteStatus(writer http.ResponseWriter, request *http.Request) {
	novelID, err := requestutil.RequiredQuery(request, "novel_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	userID := requestutil.UserID(request)

	favourited, err := handler.service.GetFavouriteStatus(request.Context(), userID, novelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, FavouriteStatus{IsFavourited: favourited})
}
