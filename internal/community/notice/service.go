// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package notice

import (
	"context"
	"log/slog"
)

// Service implements the notice listing logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a notice [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListNotices returns the active announcements, newest first.
func (service *Service) ListNotices(context context.Context) ([]Notice, error) {
	notices, err := service.repo.ListActive(context)
	if err != nil {
		return nil, err
	}
	if notices == nil {
		notices = []Notice{}
	}

	return notices, nil
}
