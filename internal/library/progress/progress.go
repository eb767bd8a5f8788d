// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package progress implements reading-position tracking for episodes.

A reader's scroll position inside an episode is sampled by the frontend and
recorded here as a percentage. Positions beyond the tracking threshold mean
the episode was finished and are deliberately not stored — there is nothing
to resume.

# Architecture

The write path is a single atomic upsert keyed on (user, episode), so two
concurrent samples for the same episode can never produce duplicate rows.
*/
package progress

// Record is one reader's last scroll position within a specific episode.
type Record struct {
	ID             string `json:"id"`
	UserID         string `json:"-"`
	EpisodeID      string `json:"episode_id"`
	ScrollPosition int    `json:"scroll_position"`

	// Timestamp is Unix seconds, assigned server-side at write time.
	Timestamp int64 `json:"timestamp"`
}

// ReadEpisode is a single entry in a novel's reading history.
type ReadEpisode struct {
	EpisodeID string `json:"episode_id"`
	Timestamp int64  `json:"timestamp"`
}

// LastReadEpisode identifies the most recently read episode within a novel.
type LastReadEpisode struct {
	EpisodeID string `json:"episode_id"`
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// History is the per-novel reading history view.
//
// ReadEpisodes is ordered by timestamp descending; LastRead is the head of
// that ordering, or nil when the reader has not opened the novel yet.
type History struct {
	LastRead     *LastReadEpisode `json:"lastRead"`
	ReadEpisodes []ReadEpisode    `json:"readEpisodes"`
}

// EmptyHistory is the graceful shape returned to anonymous readers.
func EmptyHistory() *History {
	return &History{
		LastRead:     nil,
		ReadEpisodes: []ReadEpisode{},
	}
}
