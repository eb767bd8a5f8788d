// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package overview

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository serves canned listing rows.
type fakeRepository struct {
	favourites []FavouriteRow
	bookmarks  []BookmarkRow
	progress   []ProgressRow
}

var _ Repository = (*fakeRepository)(nil)

func (f *fakeRepository) ListFavourites(_ context.Context, _ string) ([]FavouriteRow, error) {
	return f.favourites, nil
}

func (f *fakeRepository) ListBookmarks(_ context.Context, _ string) ([]BookmarkRow, error) {
	return f.bookmarks, nil
}

func (f *fakeRepository) ListProgress(_ context.Context, _ string) ([]ProgressRow, error) {
	return f.progress, nil
}

func newService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

func novelJoin(id, title string) *NovelJoin {
	return &NovelJoin{ID: id, Title: title, Author: "author-" + id, Tags: []string{"tag"}}
}

func episodeJoin(id string, index int, novelID string) *EpisodeJoin {
	return &EpisodeJoin{ID: id, Title: "Episode " + id, Index: index, NovelID: novelID}
}

/*
TestGetLibrary_Anonymous verifies anonymous readers receive the all-empty
structure without touching storage.
*/
func TestGetLibrary_Anonymous(t *testing.T) {
	service := newService(&fakeRepository{})

	library, err := service.GetLibrary(context.Background(), "")
	require.NoError(t, err)

	assert.NotNil(t, library.Favourites)
	assert.NotNil(t, library.Bookmarks)
	assert.NotNil(t, library.LastRead)
	assert.NotNil(t, library.RecentlyRead)
	assert.Empty(t, library.Favourites)
	assert.Empty(t, library.Bookmarks)
	assert.Empty(t, library.LastRead)
	assert.Empty(t, library.RecentlyRead)
}

/*
TestGetLibrary_RecentlyReadDedup verifies the recently-read strip keeps the
first occurrence per novel in recency order.
*/
func TestGetLibrary_RecentlyReadDedup(t *testing.T) {
	repo := &fakeRepository{
		// Newest first, as the store delivers them.
		progress: []ProgressRow{
			{EpisodeID: "ep-2", ScrollPosition: 40, Timestamp: 200, Episode: episodeJoin("ep-2", 2, "novel-1"), Novel: novelJoin("novel-1", "First Novel")},
			{EpisodeID: "ep-3", ScrollPosition: 10, Timestamp: 150, Episode: episodeJoin("ep-3", 1, "novel-2"), Novel: novelJoin("novel-2", "Second Novel")},
			{EpisodeID: "ep-1", ScrollPosition: 90, Timestamp: 100, Episode: episodeJoin("ep-1", 1, "novel-1"), Novel: novelJoin("novel-1", "First Novel")},
		},
	}
	service := newService(repo)

	library, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, library.LastRead, 3)
	assert.Equal(t, "ep-2", library.LastRead[0].EpisodeID)

	require.Len(t, library.RecentlyRead, 2)
	assert.Equal(t, "novel-1", library.RecentlyRead[0].ID)
	assert.Equal(t, "novel-2", library.RecentlyRead[1].ID)
}

/*
TestGetLibrary_BookmarkGrouping verifies bookmarks group by novel in
first-seen order with each episode carrying its own bookmark id.
*/
func TestGetLibrary_BookmarkGrouping(t *testing.T) {
	repo := &fakeRepository{
		bookmarks: []BookmarkRow{
			{BookmarkID: "mark-1", EpisodeID: "ep-1", Episode: episodeJoin("ep-1", 1, "novel-1"), Novel: novelJoin("novel-1", "First Novel")},
			{BookmarkID: "mark-2", EpisodeID: "ep-9", Episode: episodeJoin("ep-9", 1, "novel-2"), Novel: novelJoin("novel-2", "Second Novel")},
			{BookmarkID: "mark-3", EpisodeID: "ep-2", Episode: episodeJoin("ep-2", 2, "novel-1"), Novel: novelJoin("novel-1", "First Novel")},
		},
	}
	service := newService(repo)

	library, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, library.Bookmarks, 2)

	first := library.Bookmarks[0]
	assert.Equal(t, "novel-1", first.NovelID)
	require.Len(t, first.Episodes, 2)
	assert.Equal(t, "mark-1", first.Episodes[0].BookmarkID)
	assert.Equal(t, "mark-3", first.Episodes[1].BookmarkID)

	second := library.Bookmarks[1]
	assert.Equal(t, "novel-2", second.NovelID)
	require.Len(t, second.Episodes, 1)
}

/*
TestGetLibrary_DanglingJoins verifies marks pointing at deleted novels or
episodes are dropped from every section without failing the call.
*/
func TestGetLibrary_DanglingJoins(t *testing.T) {
	repo := &fakeRepository{
		favourites: []FavouriteRow{
			{NovelID: "novel-1", Novel: novelJoin("novel-1", "Kept")},
			{NovelID: "novel-gone", Novel: nil},
		},
		bookmarks: []BookmarkRow{
			{BookmarkID: "mark-1", EpisodeID: "ep-1", Episode: episodeJoin("ep-1", 1, "novel-1"), Novel: novelJoin("novel-1", "Kept")},
			{BookmarkID: "mark-2", EpisodeID: "ep-gone", Episode: nil, Novel: novelJoin("novel-1", "Kept")},
		},
		progress: []ProgressRow{
			{EpisodeID: "ep-1", ScrollPosition: 50, Timestamp: 300, Episode: episodeJoin("ep-1", 1, "novel-1"), Novel: novelJoin("novel-1", "Kept")},
			{EpisodeID: "ep-2", ScrollPosition: 10, Timestamp: 200, Episode: episodeJoin("ep-2", 2, "novel-1"), Novel: nil},
			{EpisodeID: "ep-3", ScrollPosition: 20, Timestamp: 100, Episode: episodeJoin("ep-3", 1, "novel-3"), Novel: novelJoin("novel-3", "")},
		},
	}
	service := newService(repo)

	library, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, library.Favourites, 1)
	assert.Equal(t, "novel-1", library.Favourites[0].NovelID)

	require.Len(t, library.Bookmarks, 1)
	require.Len(t, library.Bookmarks[0].Episodes, 1)

	// The untitled-novel row is filtered too, so only one entry survives.
	require.Len(t, library.LastRead, 1)
	assert.Equal(t, "ep-1", library.LastRead[0].EpisodeID)
	require.Len(t, library.RecentlyRead, 1)
}

/*
TestGetLibrary_CoverPlaceholder verifies cover_url stays the empty string.
*/
func TestGetLibrary_CoverPlaceholder(t *testing.T) {
	repo := &fakeRepository{
		favourites: []FavouriteRow{
			{NovelID: "novel-1", Novel: novelJoin("novel-1", "First Novel")},
		},
	}
	service := newService(repo)

	library, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, library.Favourites, 1)
	assert.Equal(t, "", library.Favourites[0].Novel.CoverURL)
}
