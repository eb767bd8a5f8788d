// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package overview

import "context"

// NovelJoin carries the joined novel columns of a mark or progress row.
type NovelJoin struct {
	ID     string
	Title  string
	Author string
	Tags   []string
}

// EpisodeJoin carries the joined episode columns of a mark or progress row.
type EpisodeJoin struct {
	ID      string
	Title   string
	Index   int
	NovelID string
}

// FavouriteRow is a favourite mark with its (possibly unresolved) novel join.
type FavouriteRow struct {
	NovelID string
	Novel   *NovelJoin
}

// BookmarkRow is a bookmark mark with its (possibly unresolved) joins.
type BookmarkRow struct {
	BookmarkID string
	EpisodeID  string
	Episode    *EpisodeJoin
	Novel      *NovelJoin
}

// ProgressRow is a reading-progress record with its (possibly unresolved) joins.
type ProgressRow struct {
	EpisodeID      string
	ScrollPosition int
	Timestamp      int64
	Episode        *EpisodeJoin
	Novel          *NovelJoin
}

// resolved reports whether the novel join survived.
func (row FavouriteRow) resolved() bool {
	return row.Novel != nil
}

// resolved reports whether both joins survived.
func (row BookmarkRow) resolved() bool {
	return row.Episode != nil && row.Novel != nil
}

// resolved reports whether both joins survived and the novel still has a title.
func (row ProgressRow) resolved() bool {
	return row.Episode != nil && row.Novel != nil && row.Novel.Title != ""
}

// Repository defines the read-only data access contract for the library view.
//
// All three listings use outer joins so that marks pointing at deleted novels
// or episodes still come back, with nil join fields, and are filtered in one
// place by the service.
type Repository interface {

	// ListFavourites returns the reader's favourite marks with novel joins,
	// oldest mark first.
	ListFavourites(context context.Context, userID string) ([]FavouriteRow, error)

	// ListBookmarks returns the reader's bookmark marks with episode and
	// novel joins, oldest mark first.
	ListBookmarks(context context.Context, userID string) ([]BookmarkRow, error)

	// ListProgress returns the reader's progress rows with episode and novel
	// joins, newest first. Ties on timestamp break by row id descending.
	ListProgress(context context.Context, userID string) ([]ProgressRow, error)
}
