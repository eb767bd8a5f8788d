// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package support

import (
	"context"
	"log/slog"

	"github.com/libraryofui/uilib/internal/platform/validate"
	"github.com/libraryofui/uilib/pkg/uuidv7"
)

// Service implements the support submission logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a support [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
SubmitRequest stores a support request.

Description: Submissions are accepted anonymously; there is nothing to tie a
request to a reader beyond what they write in the body. The type is free-form
text from the form, so any non-empty value is stored as-is.

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) SubmitRequest(context context.Context, requestType, body string) error {
	validator := (&validate.Validator{}).
		Required("type", requestType).
		Required("body", body).
		MaxLen("body", body, maxBodyLen)
	if err := validator.Err(); err != nil {
		return err
	}

	id := uuidv7.New()
	if err := service.repo.Insert(context, id, requestType, body); err != nil {
		return err
	}

	service.logger.InfoContext(context, "support_request_submitted",
		slog.String("request_id", id),
		slog.String("type", requestType),
	)

	return nil
}
