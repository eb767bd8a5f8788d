// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package novel

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/platform/apperr"
	"github.com/libraryofui/uilib/pkg/pagination"
)

// fakeRepository serves canned catalogue rows and records the filter it saw.
type fakeRepository struct {
	novels     []Summary
	total      int
	seasons    []Season
	episodes   []Episode
	lastFilter Filter
}

var _ Repository = (*fakeRepository)(nil)

func (f *fakeRepository) List(_ context.Context, filter Filter, _, _ int) ([]Summary, int, error) {
	f.lastFilter = filter
	return f.novels, f.total, nil
}

func (f *fakeRepository) GetByID(_ context.Context, novelID string) (Summary, error) {
	for _, summary := range f.novels {
		if summary.ID == novelID {
			return summary, nil
		}
	}
	return Summary{}, apperr.NotFound("Novel not found")
}

func (f *fakeRepository) ListSeasons(_ context.Context, _ string) ([]Season, error) {
	return f.seasons, nil
}

func (f *fakeRepository) ListEpisodes(_ context.Context, _, _ string) ([]Episode, error) {
	return f.episodes, nil
}

func newService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.DiscardHandler))
}

/*
TestListNovels_KeywordNormalization verifies the search keyword reaches the
store in its normalized form.
*/
func TestListNovels_KeywordNormalization(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(repo)

	_, _, err := service.ListNovels(context.Background(), "  Ｌｉｂｒａｒｙ　of\tUi ", pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, "Library of Ui", repo.lastFilter.Keyword)
}

/*
TestListNovels_Meta verifies pagination metadata reflects the filtered total.
*/
func TestListNovels_Meta(t *testing.T) {
	repo := &fakeRepository{total: 45}
	service := newService(repo)

	novels, meta, err := service.ListNovels(context.Background(), "", pagination.Params{Page: 2, Limit: 20})
	require.NoError(t, err)

	assert.NotNil(t, novels)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

/*
TestGetNovel_Detail verifies the detail view carries seasons and episodes.
*/
func TestGetNovel_Detail(t *testing.T) {
	novelID := "5f0c2c6e-9a42-7cc0-8f33-111111111111"
	repo := &fakeRepository{
		novels: []Summary{{ID: novelID, Title: "First Novel", Author: "someone"}},
		seasons: []Season{
			{ID: "season-1", Name: "Part One", SeasonNumber: 1, Sequence: 1},
		},
		episodes: []Episode{
			{ID: "ep-1", Title: "One", Index: 1, Bookmarked: true},
			{ID: "ep-2", Title: "Two", Index: 2},
		},
	}
	service := newService(repo)

	detail, err := service.GetNovel(context.Background(), novelID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "First Novel", detail.Title)
	require.Len(t, detail.Seasons, 1)
	require.Len(t, detail.Episodes, 2)
	assert.True(t, detail.Episodes[0].Bookmarked)
	assert.False(t, detail.Episodes[1].Bookmarked)
}

/*
TestGetNovel_InvalidID verifies malformed ids fail validation before storage.
*/
func TestGetNovel_InvalidID(t *testing.T) {
	service := newService(&fakeRepository{})

	_, err := service.GetNovel(context.Background(), "not-a-uuid", "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestGetNovel_NotFound verifies unknown novels surface as not-found.
*/
func TestGetNovel_NotFound(t *testing.T) {
	service := newService(&fakeRepository{})

	_, err := service.GetNovel(context.Background(), "5f0c2c6e-9a42-7cc0-8f33-222222222222", "")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
