// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package novel

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/libraryofui/uilib/internal/platform/validate"
	"github.com/libraryofui/uilib/pkg/pagination"
	"github.com/libraryofui/uilib/pkg/textnorm"
)

// Service implements the catalogue business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a catalogue [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
ListNovels returns a catalogue page, optionally narrowed by keyword.

Description: The keyword is NFKC-normalized before matching, so full-width
input and irregular whitespace find the same novels as their plain forms.

Returns:
  - []Summary: The page of novels, newest first
  - pagination.Meta: Page metadata with the filtered total
  - error: Persistence failures
*/
func (service *Service) ListNovels(context context.Context, keyword string, params pagination.Params) ([]Summary, pagination.Meta, error) {
	filter := Filter{Keyword: textnorm.Keyword(keyword)}

	novels, total, err := service.repo.List(context, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if novels == nil {
		novels = []Summary{}
	}

	return novels, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
GetNovel assembles the detail view for one novel.

Description: Seasons and episodes are fetched concurrently once the novel
itself resolves. The episode list carries the reader's bookmark flags when a
session is present; anonymous readers see every flag false.

Returns:
  - Detail: Metadata plus ordered seasons and episodes
  - error: apperr.ErrNotFound when the novel does not exist
*/
func (service *Service) GetNovel(context context.Context, novelID, userID string) (Detail, error) {
	if err := (&validate.Validator{}).UUID("novel_id", novelID).Err(); err != nil {
		return Detail{}, err
	}

	summary, err := service.repo.GetByID(context, novelID)
	if err != nil {
		return Detail{}, err
	}

	var (
		seasons  []Season
		episodes []Episode
	)

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		var err error
		seasons, err = service.repo.ListSeasons(groupContext, novelID)
		return err
	})
	group.Go(func() error {
		var err error
		episodes, err = service.repo.ListEpisodes(groupContext, novelID, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return Detail{}, err
	}

	if seasons == nil {
		seasons = []Season{}
	}
	if episodes == nil {
		episodes = []Episode{}
	}

	return Detail{Summary: summary, Seasons: seasons, Episodes: episodes}, nil
}
