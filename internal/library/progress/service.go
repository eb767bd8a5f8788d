// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package progress

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/libraryofui/uilib/internal/platform/constants"
	"github.com/libraryofui/uilib/internal/platform/dberr"
	"github.com/libraryofui/uilib/internal/platform/validate"
	"github.com/libraryofui/uilib/pkg/pointer"
	"github.com/libraryofui/uilib/pkg/slice"
)

// Service implements the reading-progress business rules.
type Service struct {
	repo   Repository
	logger *slog.Logger

	// now is replaceable in tests for deterministic timestamps.
	now func() time.Time
}

// NewService constructs a progress [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// RecordProgress persists a scroll-position sample for (userID, episodeID).
//
// Positions above [constants.MaxTrackedScrollPosition] are acknowledged but
// not stored: the reader finished the episode, so there is nothing to resume.
// Fractional positions are truncated toward zero before storage.
func (service *Service) RecordProgress(context context.Context, userID, episodeID string, scrollPosition float64) error {
	v := &validate.Validator{}
	if err := v.
		Required("episode_id", episodeID).
		Custom("scroll_position", scrollPosition < 0, "Must not be negative").
		Err(); err != nil {
		return err
	}

	// The threshold compares the raw sample; 95.5 counts as finished and is
	// never stored, even though it truncates to 95.
	if scrollPosition > constants.MaxTrackedScrollPosition {
		service.logger.DebugContext(context, "progress_sample_skipped",
			slog.String("episode_id", episodeID),
			slog.Float64("scroll_position", scrollPosition),
		)
		return nil
	}

	return service.repo.Upsert(context, userID, episodeID, int(scrollPosition), service.now().Unix())
}

// GetProgress returns the stored scroll position for (userID, episodeID).
//
// It returns nil — not an error — for anonymous readers and for episodes
// with no recorded progress.
func (service *Service) GetProgress(context context.Context, userID, episodeID string) (*int, error) {
	if err := (&validate.Validator{}).Required("episode_id", episodeID).Err(); err != nil {
		return nil, err
	}

	if userID == "" {
		return nil, nil
	}

	position, err := service.repo.GetScrollPosition(context, userID, episodeID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return pointer.To(position), nil
}

// GetHistory returns the reader's history for one novel, newest first.
//
// Anonymous readers receive the empty shape rather than an error.
func (service *Service) GetHistory(context context.Context, userID, novelID string) (*History, error) {
	if err := (&validate.Validator{}).Required("novel_id", novelID).Err(); err != nil {
		return nil, err
	}

	if userID == "" {
		return EmptyHistory(), nil
	}

	rows, err := service.repo.ListByNovel(context, userID, novelID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return EmptyHistory(), nil
	}

	// Rows arrive ordered by timestamp descending; the head is the resume point.
	head := rows[0]

	return &History{
		LastRead: &LastReadEpisode{
			EpisodeID: head.EpisodeID,
			Index:     head.Index,
			Title:     head.Title,
			Timestamp: head.Timestamp,
		},
		ReadEpisodes: slice.Map(rows, func(row HistoryRow) ReadEpisode {
			return ReadEpisode{EpisodeID: row.EpisodeID, Timestamp: row.Timestamp}
		}),
	}, nil
}
