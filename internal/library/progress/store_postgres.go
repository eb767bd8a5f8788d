// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/libraryofui/uilib/internal/platform/database/schema"
	"github.com/libraryofui/uilib/internal/platform/dberr"
	"github.com/libraryofui/uilib/pkg/uuidv7"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Upsert atomically inserts or refreshes the progress row for (userID, episodeID).

Description: The (userid, episodeid) unique key turns concurrent samples for
the same episode into a single-row update instead of duplicate inserts.

Parameters:
  - context: context.Context
  - userID, episodeID: string
  - scrollPosition: int (already clamped by the service layer)
  - timestamp: int64 (Unix seconds)

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Upsert(context context.Context, userID, episodeID string, scrollPosition int, timestamp int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %q)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s, %s)
		DO UPDATE SET %s = EXCLUDED.%s, %q = EXCLUDED.%q`,
		schema.LibraryLastRead.Table,
		schema.LibraryLastRead.ID, schema.LibraryLastRead.UserID, schema.LibraryLastRead.EpisodeID,
		schema.LibraryLastRead.ScrollPosition, schema.LibraryLastRead.Timestamp,
		schema.LibraryLastRead.UserID, schema.LibraryLastRead.EpisodeID,
		schema.LibraryLastRead.ScrollPosition, schema.LibraryLastRead.ScrollPosition,
		schema.LibraryLastRead.Timestamp, schema.LibraryLastRead.Timestamp,
	)

	_, err := repository.pool.Exec(context, query,
		uuidv7.New(),
		userID,
		episodeID,
		scrollPosition,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres_progress_upsert_failed: %w", dberr.Wrap(err, "upsert_progress"))
	}

	return nil
}

/*
GetScrollPosition retrieves the stored position for (userID, episodeID).

Returns:
  - int: Stored scroll percentage
  - error: dberr.ErrNotFound when no row exists, or database errors
*/
func (repository *PostgresRepository) GetScrollPosition(context context.Context, userID, episodeID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2`,
		schema.LibraryLastRead.ScrollPosition,
		schema.LibraryLastRead.Table,
		schema.LibraryLastRead.UserID, schema.LibraryLastRead.EpisodeID,
	)

	var position int
	err := repository.pool.QueryRow(context, query, userID, episodeID).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, dberr.ErrNotFound
		}
		return 0, fmt.Errorf("postgres_progress_get_failed: %w", err)
	}

	return position, nil
}

/*
ListByNovel retrieves the reader's history rows for one novel.

Description: Joined with episode metadata, ordered by timestamp descending.
Row id breaks ties between samples recorded within the same second, so the
ordering is deterministic.
*/
func (repository *PostgresRepository) ListByNovel(context context.Context, userID, novelID string) ([]HistoryRow, error) {
	query := fmt.Sprintf(`
		SELECT lr.%s, e.%s, e.%s, lr.%q
		FROM %s lr
		JOIN %s e ON e.%s = lr.%s
		WHERE lr.%s = $1 AND e.%s = $2
		ORDER BY lr.%q DESC, lr.%s DESC`,
		schema.LibraryLastRead.EpisodeID, schema.CoreEpisode.Index, schema.CoreEpisode.Title, schema.LibraryLastRead.Timestamp,
		schema.LibraryLastRead.Table,
		schema.CoreEpisode.Table, schema.CoreEpisode.ID, schema.LibraryLastRead.EpisodeID,
		schema.LibraryLastRead.UserID, schema.CoreEpisode.NovelID,
		schema.LibraryLastRead.Timestamp, schema.LibraryLastRead.ID,
	)

	rows, err := repository.pool.Query(context, query, userID, novelID)
	if err != nil {
		return nil, fmt.Errorf("postgres_progress_list_failed: %w", err)
	}
	defer rows.Close()

	history := make([]HistoryRow, 0)
	for rows.Next() {
		var row HistoryRow
		if err := rows.Scan(&row.EpisodeID, &row.Index, &row.Title, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("postgres_progress_scan_failed: %w", err)
		}
		history = append(history, row)
	}

	return history, rows.Err()
}
