// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package account

import (
	"context"
	"log/slog"
)

// Service orchestrates account data removal.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an account [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
DeleteData removes every library row the user owns.

Description: The identity provider deletes the account itself; this clears
the marks and progress this service is responsible for. Deleting an already
empty account is not an error.

Returns:
  - DeletionReport: Per-table removal counts
  - error: Persistence failures
*/
func (service *Service) DeleteData(context context.Context, userID string) (DeletionReport, error) {
	report, err := service.repo.DeleteUserData(context, userID)
	if err != nil {
		return DeletionReport{}, err
	}

	service.logger.InfoContext(context, "account_data_deleted",
		slog.String("user_id", userID),
		slog.Int64("bookmarks", report.Bookmarks),
		slog.Int64("favourites", report.Favourites),
		slog.Int64("last_read", report.LastRead),
	)

	return report, nil
}
