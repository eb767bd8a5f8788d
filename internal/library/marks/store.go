// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package marks

import "context"

// Repository defines the data access contract for bookmark and favourite marks.
//
// Deletes report whether a row was actually removed, and inserts are
// conflict-safe, so the service can flip existence without a read-then-write
// window.
type Repository interface {

	// DeleteBookmark removes the (userID, episodeID) mark if present.
	// It reports true when a row was removed.
	DeleteBookmark(context context.Context, userID, episodeID string) (bool, error)

	// InsertBookmark creates the (userID, episodeID) mark. A concurrent
	// duplicate insert is silently absorbed by the unique key.
	InsertBookmark(context context.Context, id, userID, episodeID string) error

	// BookmarkExists reports whether the (userID, episodeID) mark exists.
	BookmarkExists(context context.Context, userID, episodeID string) (bool, error)

	// ListBookmarkedEpisodes returns the ids of every episode the reader has
	// bookmarked, oldest mark first.
	ListBookmarkedEpisodes(context context.Context, userID string) ([]string, error)

	// DeleteFavourite removes the (userID, novelID) mark if present.
	// It reports true when a row was removed.
	DeleteFavourite(context context.Context, userID, novelID string) (bool, error)

	// InsertFavourite creates the (userID, novelID) mark. A concurrent
	// duplicate insert is silently absorbed by the unique key.
	InsertFavourite(context context.Context, id, userID, novelID string) error

	// FavouriteExists reports whether the (userID, novelID) mark exists.
	FavouriteExists(context context.Context, userID, novelID string) (bool, error)
}
