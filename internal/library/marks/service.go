// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package marks

import (
	"context"
	"log/slog"

	"github.com/libraryofui/uilib/internal/platform/validate"
	"github.com/libraryofui/uilib/pkg/slice"
	"github.com/libraryofui/uilib/pkg/uuidv7"
)

// Service implements the bookmark and favourite business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a marks [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
ToggleBookmark flips the bookmark state for (userID, episodeID).

Description: Tries the delete first; when no row was removed, inserts a fresh
mark. Both steps are single statements, so two concurrent toggles settle on
exactly one of the two states instead of corrupting each other.

Returns:
  - bool: The state after the flip (true = now bookmarked)
  - error: Validation or persistence failures
*/
func (service *Service) ToggleBookmark(context context.Context, userID, episodeID string) (bool, error) {
	if err := (&validate.Validator{}).Required("episode_id", episodeID).Err(); err != nil {
		return false, err
	}

	removed, err := service.repo.DeleteBookmark(context, userID, episodeID)
	if err != nil {
		return false, err
	}
	if removed {
		service.logger.DebugContext(context, "bookmark_removed",
			slog.String("user_id", userID),
			slog.String("episode_id", episodeID),
		)
		return false, nil
	}

	if err := service.repo.InsertBookmark(context, uuidv7.New(), userID, episodeID); err != nil {
		return false, err
	}

	service.logger.DebugContext(context, "bookmark_added",
		slog.String("user_id", userID),
		slog.String("episode_id", episodeID),
	)

	return true, nil
}

/*
GetBookmarkStatus reports whether the reader has bookmarked an episode.

Description: Anonymous readers are never bookmarked anywhere, so an empty
userID short-circuits to false without touching storage.
*/
func (service *Service) GetBookmarkStatus(context context.Context, userID, episodeID string) (bool, error) {
	if userID == "" || episodeID == "" {
		return false, nil
	}

	return service.repo.BookmarkExists(context, userID, episodeID)
}

/*
ListBookmarkedEpisodes returns every episode id the reader has bookmarked.

Description: Anonymous readers receive the empty list. The result slice is
always non-nil so the JSON shape stays stable.
*/
func (service *Service) ListBookmarkedEpisodes(context context.Context, userID string) (BookmarkList, error) {
	if userID == "" {
		return BookmarkList{Episodes: []BookmarkedEpisode{}}, nil
	}

	ids, err := service.repo.ListBookmarkedEpisodes(context, userID)
	if err != nil {
		return BookmarkList{}, err
	}

	episodes := slice.Map(ids, func(id string) BookmarkedEpisode {
		return BookmarkedEpisode{EpisodeID: id}
	})
	if episodes == nil {
		episodes = []BookmarkedEpisode{}
	}

	return BookmarkList{Episodes: episodes}, nil
}

/*
ToggleFavourite flips the favourite state for (userID, novelID).

Description: Same delete-then-insert flip as [Service.ToggleBookmark], against
the favourite table.

Returns:
  - bool: The state after the flip (true = now favourited)
  - error: Validation or persistence failures
*/
func (service *Service) ToggleFavourite(context context.Context, userID, novelID string) (bool, error) {
	if err := (&validate.Validator{}).Required("novel_id", novelID).Err(); err != nil {
		return false, err
	}

	removed, err := service.repo.DeleteFavourite(context, userID, novelID)
	if err != nil {
		return false, err
	}
	if removed {
		service.logger.DebugContext(context, "favourite_removed",
			slog.String("user_id", userID),
			slog.String("novel_id", novelID),
		)
		return false, nil
	}

	if err := service.repo.InsertFavourite(context, uuidv7.New(), userID, novelID); err != nil {
		return false, err
	}

	service.logger.DebugContext(context, "favourite_added",
		slog.String("user_id", userID),
		slog.String("novel_id", novelID),
	)

	return true, nil
}

/*
GetFavouriteStatus reports whether the reader has favourited a novel.

Description: Anonymous readers always read false.
*/
func (service *Service) GetFavouriteStatus(context context.Context, userID, novelID string) (bool, error) {
	if userID == "" || novelID == "" {
		return false, nil
	}

	return service.repo.FavouriteExists(context, userID, novelID)
}
