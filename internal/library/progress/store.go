// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package progress

import "context"

// HistoryRow is a reading-progress row joined with its episode metadata.
type HistoryRow struct {
	EpisodeID string
	Index     int
	Title     string
	Timestamp int64
}

// Repository defines the data access contract for reading progress.
type Repository interface {

	// Upsert atomically inserts or refreshes the (userID, episodeID) row.
	// Exactly one row exists for the pair afterwards.
	Upsert(context context.Context, userID, episodeID string, scrollPosition int, timestamp int64) error

	// GetScrollPosition returns the stored position for the pair,
	// or dberr.ErrNotFound when no row exists.
	GetScrollPosition(context context.Context, userID, episodeID string) (int, error)

	// ListByNovel returns the reader's history rows for one novel, ordered
	// by timestamp descending with row id as the deterministic tie-break.
	ListByNovel(context context.Context, userID, novelID string) ([]HistoryRow, error)
}
