// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package novel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/libraryofui/uilib/internal/platform/database/schema"
	"github.com/libraryofui/uilib/internal/platform/dberr"
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
List returns a filtered, paginated page of novels and the total count.

Description: Uses COUNT(*) OVER() to retrieve the total matching count
without a second query, and a correlated subquery for per-novel episode
counts. Keyword filtering is a case-insensitive substring match over title,
author and synopsis.

Parameters:
  - context: context.Context
  - filter: Filter (normalized keyword)
  - limit, offset: int

Returns:
  - []Summary: The page of novels, newest first
  - int: Total count matching the filter
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]Summary, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, n.%s, n.%s,
		       (SELECT count(*) FROM %s e WHERE e.%s = n.%s) AS episode_count,
		       COUNT(*) OVER() AS total_count
		FROM %s n
		WHERE TRUE`,
		schema.CoreNovel.ID, schema.CoreNovel.Title, schema.CoreNovel.AuthorName,
		schema.CoreNovel.Synopsis, schema.CoreNovel.Tags,
		schema.CoreEpisode.Table, schema.CoreEpisode.NovelID, schema.CoreNovel.ID,
		schema.CoreNovel.Table,
	))

	if filter.Keyword != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (n.%s ILIKE $%d OR n.%s ILIKE $%d OR n.%s ILIKE $%d)",
			schema.CoreNovel.Title, argID, schema.CoreNovel.AuthorName, argID, schema.CoreNovel.Synopsis, argID,
		))
		args = append(args, "%"+filter.Keyword+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY n.%s DESC, n.%s DESC LIMIT $%d OFFSET $%d",
		schema.CoreNovel.CreatedAt, schema.CoreNovel.ID, argID, argID+1,
	))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_novel_list_failed: %w", err)
	}
	defer rows.Close()

	novels := make([]Summary, 0, limit)
	total := 0
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(
			&summary.ID, &summary.Title, &summary.Author, &summary.Synopsis,
			&summary.Tags, &summary.EpisodeCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_novel_scan_failed: %w", err)
		}
		if summary.Tags == nil {
			summary.Tags = []string{}
		}
		novels = append(novels, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_novel_rows_failed: %w", err)
	}

	return novels, total, nil
}

/*
GetByID retrieves one novel's summary.

Returns:
  - Summary: The novel metadata with its episode count
  - error: Mapped persistence errors (not-found included)
*/
func (repository *PostgresRepository) GetByID(context context.Context, novelID string) (Summary, error) {
	query := fmt.Sprintf(`
		SELECT n.%s, n.%s, n.%s, n.%s, n.%s,
		       (SELECT count(*) FROM %s e WHERE e.%s = n.%s) AS episode_count
		FROM %s n
		WHERE n.%s = $1`,
		schema.CoreNovel.ID, schema.CoreNovel.Title, schema.CoreNovel.AuthorName,
		schema.CoreNovel.Synopsis, schema.CoreNovel.Tags,
		schema.CoreEpisode.Table, schema.CoreEpisode.NovelID, schema.CoreNovel.ID,
		schema.CoreNovel.Table,
		schema.CoreNovel.ID,
	)

	var summary Summary
	err := repository.pool.QueryRow(context, query, novelID).Scan(
		&summary.ID, &summary.Title, &summary.Author, &summary.Synopsis,
		&summary.Tags, &summary.EpisodeCount,
	)
	if err != nil {
		return Summary{}, dberr.Wrap(err, "get_novel")
	}
	if summary.Tags == nil {
		summary.Tags = []string{}
	}

	return summary, nil
}

// ListSeasons retrieves a novel's seasons in sequence order.
func (repository *PostgresRepository) ListSeasons(context context.Context, novelID string) ([]Season, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s`,
		schema.CoreSeason.ID, schema.CoreSeason.Type, schema.CoreSeason.SeasonNumber,
		schema.CoreSeason.Name, schema.CoreSeason.Sequence,
		schema.CoreSeason.Table,
		schema.CoreSeason.NovelID,
		schema.CoreSeason.Sequence,
	)

	rows, err := repository.pool.Query(context, query, novelID)
	if err != nil {
		return nil, fmt.Errorf("postgres_season_list_failed: %w", err)
	}
	defer rows.Close()

	seasons := make([]Season, 0)
	for rows.Next() {
		var season Season
		if err := rows.Scan(&season.ID, &season.Type, &season.SeasonNumber, &season.Name, &season.Sequence); err != nil {
			return nil, fmt.Errorf("postgres_season_scan_failed: %w", err)
		}
		seasons = append(seasons, season)
	}

	return seasons, rows.Err()
}

/*
ListEpisodes retrieves a novel's episodes in index order with bookmark flags.

Description: The bookmark flag is an EXISTS probe against the reader's marks.
Anonymous readers pass a NULL user id, which makes the probe constant-false
without a separate query shape.
*/
func (repository *PostgresRepository) ListEpisodes(context context.Context, novelID, userID string) ([]Episode, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s,
		       EXISTS (
		           SELECT 1 FROM %s b
		           WHERE b.%s = e.%s AND b.%s = $2
		       ) AS bookmarked
		FROM %s e
		WHERE e.%s = $1
		ORDER BY e.%s`,
		schema.CoreEpisode.ID, schema.CoreEpisode.Title, schema.CoreEpisode.Index, schema.CoreEpisode.SeasonID,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.EpisodeID, schema.CoreEpisode.ID, schema.LibraryBookmark.UserID,
		schema.CoreEpisode.Table,
		schema.CoreEpisode.NovelID,
		schema.CoreEpisode.Index,
	)

	var reader any
	if userID != "" {
		reader = userID
	}

	rows, err := repository.pool.Query(context, query, novelID, reader)
	if err != nil {
		return nil, fmt.Errorf("postgres_episode_list_failed: %w", err)
	}
	defer rows.Close()

	episodes := make([]Episode, 0)
	for rows.Next() {
		var episode Episode
		if err := rows.Scan(&episode.ID, &episode.Title, &episode.Index, &episode.SeasonID, &episode.Bookmarked); err != nil {
			return nil, fmt.Errorf("postgres_episode_scan_failed: %w", err)
		}
		episodes = append(episodes, episode)
	}

	return episodes, rows.Err()
}
