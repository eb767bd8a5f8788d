// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package progress

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/platform/apperr"
	"github.com/libraryofui/uilib/internal/platform/dberr"
)

// fakeRow is an in-memory progress row.
type fakeRow struct {
	scrollPosition int
	timestamp      int64
}

// fakeRepository keeps progress rows in memory, keyed by (user, episode).
type fakeRepository struct {
	rows    map[[2]string]fakeRow
	history []HistoryRow
	// upserts counts write calls, to prove threshold samples never reach storage.
	upserts int
}

var _ Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[[2]string]fakeRow)}
}

func (f *fakeRepository) Upsert(_ context.Context, userID, episodeID string, scrollPosition int, timestamp int64) error {
	f.upserts++
	f.rows[[2]string{userID, episodeID}] = fakeRow{scrollPosition: scrollPosition, timestamp: timestamp}
	return nil
}

func (f *fakeRepository) GetScrollPosition(_ context.Context, userID, episodeID string) (int, error) {
	row, ok := f.rows[[2]string{userID, episodeID}]
	if !ok {
		return 0, dberr.ErrNotFound
	}
	return row.scrollPosition, nil
}

func (f *fakeRepository) ListByNovel(_ context.Context, _, _ string) ([]HistoryRow, error) {
	return f.history, nil
}

func newService(repo Repository) *Service {
	logger := slog.New(slog.DiscardHandler)
	return NewService(repo, logger)
}

/*
TestRecordProgress_Upsert verifies that repeated samples for the same episode
collapse into a single row holding the latest position.
*/
func TestRecordProgress_Upsert(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)
	ctx := context.Background()

	require.NoError(t, service.RecordProgress(ctx, "user-1", "ep-1", 10))
	require.NoError(t, service.RecordProgress(ctx, "user-1", "ep-1", 50))

	assert.Equal(t, 2, repo.upserts)
	assert.Len(t, repo.rows, 1)

	position, err := repo.GetScrollPosition(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.Equal(t, 50, position)
}

/*
TestRecordProgress_ThresholdSkip verifies that samples above the tracking
threshold are acknowledged but never written.
*/
func TestRecordProgress_ThresholdSkip(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)
	ctx := context.Background()

	for position := 96.0; position <= 100; position++ {
		require.NoError(t, service.RecordProgress(ctx, "user-1", "ep-1", position))
	}

	// A fractional sample just past the threshold counts as finished too;
	// it must not sneak in as its truncated value.
	require.NoError(t, service.RecordProgress(ctx, "user-1", "ep-1", 95.5))

	assert.Zero(t, repo.upserts)

	stored, err := service.GetProgress(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

/*
TestRecordProgress_ThresholdBoundary verifies 95 is still tracked.
*/
func TestRecordProgress_ThresholdBoundary(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	require.NoError(t, service.RecordProgress(context.Background(), "user-1", "ep-1", 95))
	assert.Equal(t, 1, repo.upserts)
}

/*
TestRecordProgress_TruncatesFraction verifies fractional samples are stored
as whole percentages, truncated toward zero.
*/
func TestRecordProgress_TruncatesFraction(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)
	ctx := context.Background()

	require.NoError(t, service.RecordProgress(ctx, "user-1", "ep-1", 42.9))

	position, err := repo.GetScrollPosition(ctx, "user-1", "ep-1")
	require.NoError(t, err)
	assert.Equal(t, 42, position)
}

/*
TestRecordProgress_Validation rejects missing identifiers and negative samples.
*/
func TestRecordProgress_Validation(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	err := service.RecordProgress(ctx, "user-1", "", 10)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	err = service.RecordProgress(ctx, "user-1", "ep-1", -5)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestRecordProgress_Timestamp verifies the server assigns the write time.
*/
func TestRecordProgress_Timestamp(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)
	fixed := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	require.NoError(t, service.RecordProgress(context.Background(), "user-1", "ep-1", 30))

	row := repo.rows[[2]string{"user-1", "ep-1"}]
	assert.Equal(t, fixed.Unix(), row.timestamp)
}

/*
TestGetProgress_Anonymous verifies anonymous lookups return nil, not an error.
*/
func TestGetProgress_Anonymous(t *testing.T) {
	service := newService(newFakeRepository())

	position, err := service.GetProgress(context.Background(), "", "ep-1")
	require.NoError(t, err)
	assert.Nil(t, position)
}

/*
TestGetHistory_Ordering verifies the head of the history is the resume point
and every read episode is reported newest first.
*/
func TestGetHistory_Ordering(t *testing.T) {
	repo := newFakeRepository()
	repo.history = []HistoryRow{
		{EpisodeID: "ep-3", Index: 3, Title: "Third", Timestamp: 300},
		{EpisodeID: "ep-1", Index: 1, Title: "First", Timestamp: 200},
		{EpisodeID: "ep-2", Index: 2, Title: "Second", Timestamp: 100},
	}
	service := newService(repo)

	history, err := service.GetHistory(context.Background(), "user-1", "novel-1")
	require.NoError(t, err)
	require.NotNil(t, history.LastRead)

	assert.Equal(t, "ep-3", history.LastRead.EpisodeID)
	assert.Equal(t, 3, history.LastRead.Index)
	assert.Equal(t, "Third", history.LastRead.Title)
	assert.Equal(t, int64(300), history.LastRead.Timestamp)

	require.Len(t, history.ReadEpisodes, 3)
	assert.Equal(t, "ep-3", history.ReadEpisodes[0].EpisodeID)
	assert.Equal(t, "ep-2", history.ReadEpisodes[2].EpisodeID)
}

/*
TestGetHistory_EmptyShapes verifies anonymous readers and unopened novels both
receive the empty history shape.
*/
func TestGetHistory_EmptyShapes(t *testing.T) {
	service := newService(newFakeRepository())
	ctx := context.Background()

	for _, userID := range []string{"", "user-1"} {
		history, err := service.GetHistory(ctx, userID, "novel-1")
		require.NoError(t, err)
		assert.Nil(t, history.LastRead)
		assert.NotNil(t, history.ReadEpisodes)
		assert.Empty(t, history.ReadEpisodes)
	}
}
