// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package marks

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/platform/apperr"
)

// fakeRepository keeps marks in memory, keyed by (user, target id).
type fakeRepository struct {
	bookmarks  map[[2]string]string
	favourites map[[2]string]string
}

var _ Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		bookmarks:  make(map[[2]string]string),
		favourites: make(map[[2]string]string),
	}
}

func (f *fakeRepository) DeleteBookmark(_ context.Context, userID, episodeID string) (bool, error) {
	key := [2]string{userID, episodeID}
	if _, ok := f.bookmarks[key]; !ok {
		return false, nil
	}
	delete(f.bookmarks, key)
	return true, nil
}

func (f *fakeRepository) InsertBookmark(_ context.Context, id, userID, episodeID string) error {
	key := [2]string{userID, episodeID}
	if _, ok := f.bookmarks[key]; ok {
		return nil
	}
	f.bookmarks[key] = id
	return nil
}

func (f *fakeRepository) BookmarkExists(_ context.Context, userID, episodeID string) (bool, error) {
	_, ok := f.bookmarks[[2]string{userID, episodeID}]
	return ok, nil
}

func (f *fakeRepository) ListBookmarkedEpisodes(_ context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	for key := range f.bookmarks {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (f *fakeRepository) DeleteFavourite(_ context.Context, userID, novelID string) (bool, error) {
	key := [2]string{userID, novelID}
	if _, ok := f.favourites[key]; !ok {
		return false, nil
	}
	delete(f.favourites, key)
	return true, nil
}

func (f *fakeRepository) InsertFavourite(_ context.Context, id, userID, novelID string) error {
	key := [2]string{userID, novelID}
	if _, ok := f.favourites[key]; ok {
		return nil
	}
	f.favourites[key] = id
	return nil
}

func (f *fakeRepository) FavouriteExists(_ context.Context, userID, novelID string) (bool, error) {
	_, ok := f.favourites[[2]string{userID, novelID}]
	return ok, nil
}

func newService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

/*
TestToggleBookmark_RoundTrip verifies a double toggle returns to the original
state and each flip reports the resulting state.
*/
func TestToggleBookmark_RoundTrip(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	bookmarked, err := service.ToggleBookmark(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = service.ToggleBookmark(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	status, err := service.GetBookmarkStatus(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.False(t, status)

	bookmarked, err = service.ToggleBookmark(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

/*
TestToggleBookmark_Validation rejects an empty episode id.
*/
func TestToggleBookmark_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	_, err := service.ToggleBookmark(context.Background(), "user-1", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestToggleBookmark_PerUser verifies marks are scoped to the reader.
*/
func TestToggleBookmark_PerUser(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	_, err := service.ToggleBookmark(ctx, "user-1", "ep-1")
	require.NoError(t, err)

	status, err := service.GetBookmarkStatus(ctx, "user-2", "ep-1")
	require.NoError(t, err)
	assert.False(t, status)
}

/*
TestGetBookmarkStatus_Anonymous verifies anonymous readers always read false.
*/
func TestGetBookmarkStatus_Anonymous(t *testing.T) {
	repo := newFakeRepository()
	repo.bookmarks[[2]string{"user-1", "ep-1"}] = "mark-1"
	service := newService(repo)

	status, err := service.GetBookmarkStatus(context.Background(), "", "ep-1")
	require.NoError(t, err)
	assert.False(t, status)
}

/*
TestListBookmarkedEpisodes verifies the list shape for signed-in and anonymous
readers.
*/
func TestListBookmarkedEpisodes(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	_, err := service.ToggleBookmark(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	_, err = service.ToggleBookmark(ctx, "user-1", "ep-2")
	require.NoError(t, err)

	list, err := service.ListBookmarkedEpisodes(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list.Episodes, 2)

	anonymous, err := service.ListBookmarkedEpisodes(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, anonymous.Episodes)
	assert.Empty(t, anonymous.Episodes)
}

/*
TestToggleFavourite_RoundTrip verifies the favourite flip mirrors the bookmark
behaviour against the novel table.
*/
func TestToggleFavourite_RoundTrip(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	favourited, err := service.ToggleFavourite(ctx, "user-1", "novel-1")
	require.NoError(t, err)
	assert.True(t, favourited)

	status, err := service.GetFavouriteStatus(ctx, "user-1", "novel-1")
	require.NoError(t, err)
	assert.True(t, status)

	favourited, err = service.ToggleFavourite(ctx, "user-1", "novel-1")
	require.NoError(t, err)
	assert.False(t, favourited)

	status, err = service.GetFavouriteStatus(ctx, "user-1", "novel-1")
	require.NoError(t, err)
	assert.False(t, status)
}

/*
TestGetFavouriteStatus_Anonymous verifies anonymous readers always read false.
*/
func TestGetFavouriteStatus_Anonymous(t *testing.T) {
	repo := newFakeRepository()
	repo.favourites[[2]string{"user-1", "novel-1"}] = "mark-1"
	service := newService(repo)

	status, err := service.GetFavouriteStatus(context.Background(), "", "novel-1")
	require.NoError(t, err)
	assert.False(t, status)
}
