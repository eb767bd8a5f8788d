// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package marks implements bookmark and favourite toggles.

A bookmark points a reader at a specific episode; a favourite points at a
novel as a whole. Both are pure existence flips — the row either exists or it
does not, and toggling swaps the two states.

# Architecture

Each toggle is implemented as a conditional delete followed by a conflict-safe
insert, both single statements, so rapid double-clicks cannot create duplicate
rows or double-delete.
*/
package marks

// BookmarkStatus reports whether an episode is bookmarked by the reader.
type BookmarkStatus struct {
	IsBookmarked bool `json:"isBookmarked"`
}

// FavouriteStatus reports whether a novel is favourited by the reader.
type FavouriteStatus struct {
	IsFavourited bool `json:"isFavourited"`
}

// BookmarkedEpisode is a single entry in the reader's bookmark id list.
type BookmarkedEpisode struct {
	EpisodeID string `json:"episode_id"`
}

// BookmarkList is the flat list of the reader's bookmarked episode ids.
type BookmarkList struct {
	Episodes []BookmarkedEpisode `json:"episodes"`
}
