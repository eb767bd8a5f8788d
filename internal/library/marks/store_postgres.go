// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package marks

import (
	"context"
	"fmt"

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
DeleteBookmark removes the (userID, episodeID) bookmark if present.

Returns:
  - bool: true when a row was removed
  - error: Database errors
*/
func (repository *PostgresRepository) DeleteBookmark(context context.Context, userID, episodeID string) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2`,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID, schema.LibraryBookmark.EpisodeID,
	)

	tag, err := repository.pool.Exec(context, query, userID, episodeID)
	if err != nil {
		return false, fmt.Errorf("postgres_bookmark_delete_failed: %w", dberr.Wrap(err, "delete_bookmark"))
	}

	return tag.RowsAffected() > 0, nil
}

/*
InsertBookmark creates the (userID, episodeID) bookmark.

Description: ON CONFLICT DO NOTHING absorbs the duplicate insert a concurrent
toggle can produce, so the unique key never surfaces as an error here.
*/
func (repository *PostgresRepository) InsertBookmark(context context.Context, id, userID, episodeID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO NOTHING`,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.ID, schema.LibraryBookmark.UserID, schema.LibraryBookmark.EpisodeID,
		schema.LibraryBookmark.UserID, schema.LibraryBookmark.EpisodeID,
	)

	_, err := repository.pool.Exec(context, query, id, userID, episodeID)
	if err != nil {
		return fmt.Errorf("postgres_bookmark_insert_failed: %w", dberr.Wrap(err, "insert_bookmark"))
	}

	return nil
}

// BookmarkExists reports whether the (userID, episodeID) bookmark exists.
func (repository *PostgresRepository) BookmarkExists(context context.Context, userID, episodeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2
		)`,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID, schema.LibraryBookmark.EpisodeID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, episodeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_bookmark_exists_failed: %w", err)
	}

	return exists, nil
}

/*
ListBookmarkedEpisodes returns the ids of every episode the reader has
bookmarked, oldest mark first.
*/
func (repository *PostgresRepository) ListBookmarkedEpisodes(context context.Context, userID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s`,
		schema.LibraryBookmark.EpisodeID,
		schema.LibraryBookmark.Table,
		schema.LibraryBookmark.UserID,
		schema.LibraryBookmark.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_bookmark_list_failed: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres_bookmark_scan_failed: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

/*
DeleteFavourite removes the (userID, novelID) favourite if present.

Returns:
  - bool: true when a row was removed
  - error: Database errors
*/
func (repository *PostgresRepository) DeleteFavourite(context context.Context, userID, novelID string) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2`,
		schema.LibraryFavourite.Table,
		schema.LibraryFavourite.UserID, schema.LibraryFavourite.NovelID,
	)

	tag, err := repository.pool.Exec(context, query, userID, novelID)
	if err != nil {
		return false, fmt.Errorf("postgres_favourite_delete_failed: %w", dberr.Wrap(err, "delete_favourite"))
	}

	return tag.RowsAffected() > 0, nil
}

// InsertFavourite creates the (userID, novelID) favourite, absorbing duplicates.
func (repository *PostgresRepository) InsertFavourite(context context.Context, id, userID, novelID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO NOTHING`,
		schema.LibraryFavourite.Table,
		schema.LibraryFavourite.ID, schema.LibraryFavourite.UserID, schema.LibraryFavourite.NovelID,
		schema.LibraryFavourite.UserID, schema.LibraryFavourite.NovelID,
	)

	_, err := repository.pool.Exec(context, query, id, userID, novelID)
	if err != nil {
		return fmt.Errorf("postgres_favourite_insert_failed: %w", dberr.Wrap(err, "insert_favourite"))
	}

	return nil
}

// FavouriteExists reports whether the (userID, novelID) favourite exists.
func (repository *PostgresRepository) FavouriteExists(context context.Context, userID, novelID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2
		)`,
		schema.LibraryFavourite.Table,
		schema.LibraryFavourite.UserID, schema.LibraryFavourite.NovelID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, novelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_favourite_exists_failed: %w", err)
	}

	return exists, nil
}
