// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

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
GetBodyURL retrieves the content host URL of one episode's body.

Returns:
  - string: The body URL
  - error: Mapped persistence errors (not-found included)
*/
func (repository *PostgresRepository) GetBodyURL(context context.Context, episodeID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		schema.CoreEpisode.Body,
		schema.CoreEpisode.Table,
		schema.CoreEpisode.ID,
	)

	var url string
	if err := repository.pool.QueryRow(context, query, episodeID).Scan(&url); err != nil {
		return "", dberr.Wrap(err, "get_episode_body_url")
	}

	return url, nil
}
