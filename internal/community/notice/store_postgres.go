// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package notice

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

// ListActive retrieves active notices, newest first.
func (repository *PostgresRepository) ListActive(context context.Context) ([]Notice, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, extract(epoch FROM %s)::bigint
		FROM %s
		WHERE %s
		ORDER BY %s DESC`,
		schema.CommunityNotice.ID, schema.CommunityNotice.Title, schema.CommunityNotice.Body,
		schema.CommunityNotice.CreatedAt,
		schema.CommunityNotice.Table,
		schema.CommunityNotice.Active,
		schema.CommunityNotice.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_notice_list_failed: %w", err)
	}
	defer rows.Close()

	notices := make([]Notice, 0)
	for rows.Next() {
		var notice Notice
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Body, &notice.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres_notice_scan_failed: %w", err)
		}
		notices = append(notices, notice)
	}

	return notices, rows.Err()
}
