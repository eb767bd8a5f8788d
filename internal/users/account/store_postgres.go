// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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
DeleteUserData removes the user's library rows inside one transaction.

Description: All three tables clear together or not at all, so an interrupted
deletion never leaves a half-emptied account behind.

Returns:
  - DeletionReport: Per-table removal counts
  - error: Database execution failures
*/
func (repository *PostgresRepository) DeleteUserData(context context.Context, userID string) (DeletionReport, error) {
	transaction, err := repository.pool.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return DeletionReport{}, fmt.Errorf("postgres_account_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	var report DeletionReport

	tag, err := transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryBookmark.Table, schema.LibraryBookmark.UserID), userID)
	if err != nil {
		return DeletionReport{}, fmt.Errorf("postgres_account_delete_bookmarks_failed: %w", err)
	}
	report.Bookmarks = tag.RowsAffected()

	tag, err = transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryFavourite.Table, schema.LibraryFavourite.UserID), userID)
	if err != nil {
		return DeletionReport{}, fmt.Errorf("postgres_account_delete_favourites_failed: %w", err)
	}
	report.Favourites = tag.RowsAffected()

	tag, err = transaction.Exec(context,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.LibraryLastRead.Table, schema.LibraryLastRead.UserID), userID)
	if err != nil {
		return DeletionReport{}, fmt.Errorf("postgres_account_delete_lastread_failed: %w", err)
	}
	report.LastRead = tag.RowsAffected()

	if err := transaction.Commit(context); err != nil {
		return DeletionReport{}, fmt.Errorf("postgres_account_commit_failed: %w", err)
	}

	return report, nil
}
