// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package support

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

// Insert stores a new support request.
func (repository *PostgresRepository) Insert(context context.Context, id, requestType, body string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)`,
		schema.CommunitySupport.Table,
		schema.CommunitySupport.ID, schema.CommunitySupport.Type, schema.CommunitySupport.Body,
	)

	_, err := repository.pool.Exec(context, query, id, requestType, body)
	if err != nil {
		return fmt.Errorf("postgres_support_insert_failed: %w", dberr.Wrap(err, "insert_support"))
	}

	return nil
}
