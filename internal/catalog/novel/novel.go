// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package novel implements the public novel catalogue.

It serves the paginated listing, keyword search and the per-novel detail view
with its ordered episode list. The detail view decorates each episode with the
requesting reader's bookmark state when a session is present.
*/
package novel

// Summary is a novel as it appears in catalogue listings.
//
// CoverURL is always the empty string; there is no cover-image subsystem.
type Summary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Synopsis     string   `json:"synopsis"`
	Tags         []string `json:"tags"`
	CoverURL     string   `json:"cover_url"`
	EpisodeCount int      `json:"episode_count"`
}

// Season is the optional grouping an episode belongs to.
type Season struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	Sequence     int    `json:"sequence"`
}

// Episode is one entry in a novel's episode list.
//
// Bookmarked reflects the requesting reader's mark and is always false for
// anonymous readers. SeasonID is nil for episodes outside any season.
type Episode struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Index      int     `json:"index"`
	SeasonID   *string `json:"season_id"`
	Bookmarked bool    `json:"bookmarked"`
}

// Detail is the full per-novel view.
type Detail struct {
	Summary
	Seasons  []Season  `json:"seasons"`
	Episodes []Episode `json:"episodes"`
}
