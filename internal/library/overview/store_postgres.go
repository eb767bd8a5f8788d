// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package overview

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/libraryofui/uilib/internal/platform/database/schema"
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
ListFavourites retrieves the reader's favourite marks with novel joins.

Description: LEFT JOIN keeps marks whose novel has been deleted; those rows
come back with a nil Novel and are filtered by the service.
*/
func (repository *PostgresRepository) ListFavourites(context context.Context, userID string) ([]FavouriteRow, error) {
	query := fmt.Sprintf(`
		SELECT f.%s, n.%s, n.%s, n.%s, n.%s
		FROM %s f
		LEFT JOIN %s n ON n.%s = f.%s
		WHERE f.%s = $1
		ORDER BY f.%s`,
		schema.LibraryFavourite.NovelID,
		schema.CoreNovel.ID, schema.CoreNovel.Title, schema.CoreNovel.AuthorName, schema.CoreNovel.Tags,
		schema.LibraryFavourite.Table,
		schema.CoreNovel.Table, schema.CoreNovel.ID, schema.LibraryFavourite.NovelID,
		schema.LibraryFavourite.UserID,
		schema.LibraryFavourite.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_overview_favourites_failed: %w", err)
	}
	defer rows.Close()

	favourites := make([]FavouriteRow, 0)
	for rows.Next() {
		var (
			row           FavouriteRow
			novelID       *string
			title, author *string
			tags          []string
		)
		if err := rows.Scan(&row.NovelID, &novelID, &title, &author, &tags); err != nil {
			return nil, fmt.Errorf("postgres_overview_favourites_scan_failed: %w", err)
		}
		row.Novel = joinNovel(novelID, title, author, tags)
		favourites = append(favourites, row)
	}

	return favourites, rows.Err()
}

/*
ListBookmarks retrieves the reader's bookmark marks with episode and novel joins.
*/
func (repository *PostgresRepository) ListBookmarks(context context.Context, userID string) ([]BookmarkRow, error) {
	query := fmt.Sprintf(`
		SELECT b.%s, b.%s,
		       e.%s, e.%s, e.%s, e.%s,
		       n.%s, n.%s, n.%s, n.%s
		FROM %s b
		LEFT JOIN %s e ON e.%s = b.%s
		LEFT JOIN %s n ON n.%s = e.%s
		WHERE b.%s = $1
		ORDER BY b.%s`,
		schema.LibraryBookmark.ID, schema.LibraryBookmark.EpisodeID,
		schema.CoreEpisode.ID, schema.CoreEpisode.Title, schema.CoreEpisode.Index, schema.CoreEpisode.NovelID,
		schema.CoreNovel.ID, schema.CoreNovel.Title, schema.CoreNovel.AuthorName, schema.CoreNovel.Tags,
		schema.LibraryBookmark.Table,
		schema.CoreEpisode.Table, schema.CoreEpisode.ID, schema.LibraryBookmark.EpisodeID,
		schema.CoreNovel.Table, schema.CoreNovel.ID, schema.CoreEpisode.NovelID,
		schema.LibraryBookmark.UserID,
		schema.LibraryBookmark.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_overview_bookmarks_failed: %w", err)
	}
	defer rows.Close()

	bookmarks := make([]BookmarkRow, 0)
	for rows.Next() {
		var (
			row                 BookmarkRow
			episodeID, title    *string
			index               *int
			episodeNovelID      *string
			novelID, novelTitle *string
			novelAuthor         *string
			tags                []string
		)
		if err := rows.Scan(
			&row.BookmarkID, &row.EpisodeID,
			&episodeID, &title, &index, &episodeNovelID,
			&novelID, &novelTitle, &novelAuthor, &tags,
		); err != nil {
			return nil, fmt.Errorf("postgres_overview_bookmarks_scan_failed: %w", err)
		}
		row.Episode = joinEpisode(episodeID, title, index, episodeNovelID)
		row.Novel = joinNovel(novelID, novelTitle, novelAuthor, tags)
		bookmarks = append(bookmarks, row)
	}

	return bookmarks, rows.Err()
}

/*
ListProgress retrieves the reader's progress rows with episode and novel joins.

Description: Ordered newest first; row id breaks ties between samples recorded
within the same second.
*/
func (repository *PostgresRepository) ListProgress(context context.Context, userID string) ([]ProgressRow, error) {
	query := fmt.Sprintf(`
		SELECT lr.%s, lr.%s, lr.%q,
		       e.%s, e.%s, e.%s, e.%s,
		       n.%s, n.%s, n.%s, n.%s
		FROM %s lr
		LEFT JOIN %s e ON e.%s = lr.%s
		LEFT JOIN %s n ON n.%s = e.%s
		WHERE lr.%s = $1
		ORDER BY lr.%q DESC, lr.%s DESC`,
		schema.LibraryLastRead.EpisodeID, schema.LibraryLastRead.ScrollPosition, schema.LibraryLastRead.Timestamp,
		schema.CoreEpisode.ID, schema.CoreEpisode.Title, schema.CoreEpisode.Index, schema.CoreEpisode.NovelID,
		schema.CoreNovel.ID, schema.CoreNovel.Title, schema.CoreNovel.AuthorName, schema.CoreNovel.Tags,
		schema.LibraryLastRead.Table,
		schema.CoreEpisode.Table, schema.CoreEpisode.ID, schema.LibraryLastRead.EpisodeID,
		schema.CoreNovel.Table, schema.CoreNovel.ID, schema.CoreEpisode.NovelID,
		schema.LibraryLastRead.UserID,
		schema.LibraryLastRead.Timestamp, schema.LibraryLastRead.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_overview_progress_failed: %w", err)
	}
	defer rows.Close()

	progress := make([]ProgressRow, 0)
	for rows.Next() {
		var (
			row                 ProgressRow
			episodeID, title    *string
			index               *int
			episodeNovelID      *string
			novelID, novelTitle *string
			novelAuthor         *string
			tags                []string
		)
		if err := rows.Scan(
			&row.EpisodeID, &row.ScrollPosition, &row.Timestamp,
			&episodeID, &title, &index, &episodeNovelID,
			&novelID, &novelTitle, &novelAuthor, &tags,
		); err != nil {
			return nil, fmt.Errorf("postgres_overview_progress_scan_failed: %w", err)
		}
		row.Episode = joinEpisode(episodeID, title, index, episodeNovelID)
		row.Novel = joinNovel(novelID, novelTitle, novelAuthor, tags)
		progress = append(progress, row)
	}

	return progress, rows.Err()
}

// joinNovel builds a NovelJoin from nullable columns; nil id means the join
// found nothing.
func joinNovel(id, title, author *string, tags []string) *NovelJoin {
	if id == nil {
		return nil
	}

	join := &NovelJoin{ID: *id, Tags: tags}
	if title != nil {
		join.Title = *title
	}
	if author != nil {
		join.Author = *author
	}

	return join
}

// joinEpisode builds an EpisodeJoin from nullable columns; nil id means the
// join found nothing.
func joinEpisode(id, title *string, index *int, novelID *string) *EpisodeJoin {
	if id == nil {
		return nil
	}

	join := &EpisodeJoin{ID: *id}
	if title != nil {
		join.Title = *title
	}
	if index != nil {
		join.Index = *index
	}
	if novelID != nil {
		join.NovelID = *novelID
	}

	return join
}
