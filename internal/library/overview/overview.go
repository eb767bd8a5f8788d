// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package overview assembles the per-reader library view.

The library combines four derived sections over the same underlying marks and
progress rows: favourites, bookmarks grouped by novel, the full reading
history, and the recently-read novel strip. Sections are fetched concurrently
and joined rows whose source novel or episode has disappeared are dropped at
the assembly boundary rather than failing the whole view.
*/
package overview

// Novel is the embedded novel card used across all library sections.
//
// CoverURL is always the empty string; there is no cover-image subsystem.
type Novel struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
	CoverURL string   `json:"cover_url"`
}

// FavouriteEntry is one favourited novel in the library view.
type FavouriteEntry struct {
	NovelID string `json:"novel_id"`
	Novel   Novel  `json:"novel"`
}

// BookmarkedEpisode is one bookmarked episode inside a novel group.
type BookmarkedEpisode struct {
	EpisodeID  string `json:"episode_id"`
	Title      string `json:"title"`
	Index      int    `json:"index"`
	BookmarkID string `json:"bookmark_id"`
}

// BookmarkGroup collects a reader's bookmarks within one novel.
type BookmarkGroup struct {
	NovelID  string              `json:"novel_id"`
	Title    string              `json:"title"`
	Author   string              `json:"author"`
	Tags     []string            `json:"tags"`
	Episodes []BookmarkedEpisode `json:"episodes"`
}

// LastReadEpisode is the episode metadata attached to a history entry.
type LastReadEpisode struct {
	EpisodeID string `json:"episode_id"`
	Title     string `json:"title"`
	Index     int    `json:"index"`
	NovelID   string `json:"novel_id"`
	Novel     Novel  `json:"novel"`
}

// LastReadEntry is one reading-progress record in the library view.
// The head of the lastRead section is the reader's "continue reading" target.
type LastReadEntry struct {
	EpisodeID      string          `json:"episode_id"`
	ScrollPosition int             `json:"scroll_position"`
	Timestamp      int64           `json:"timestamp"`
	Episode        LastReadEpisode `json:"episode"`
}

// Library is the aggregated per-reader view.
type Library struct {
	Favourites   []FavouriteEntry `json:"favourites"`
	Bookmarks    []BookmarkGroup  `json:"bookmarks"`
	LastRead     []LastReadEntry  `json:"lastRead"`
	RecentlyRead []Novel          `json:"recentlyRead"`
}

// EmptyLibrary returns the all-empty library shape served to anonymous readers.
func EmptyLibrary() Library {
	return Library{
		Favourites:   []FavouriteEntry{},
		Bookmarks:    []BookmarkGroup{},
		LastRead:     []LastReadEntry{},
		RecentlyRead: []Novel{},
	}
}
