// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/libraryofui/uilib/internal/platform/apperr"
	"github.com/libraryofui/uilib/internal/platform/validate"
)

// blankRuns matches three or more consecutive newlines for collapsing.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Service implements the episode content logic.
type Service struct {
	repo    Repository
	cache   BodyCache
	fetcher BodyFetcher
	logger  *slog.Logger
}

// NewService constructs an episode [Service].
func NewService(repo Repository, cache BodyCache, fetcher BodyFetcher, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, fetcher: fetcher, logger: logger}
}

/*
GetContent returns the normalized body of one episode.

Description: The cache is consulted first; on a miss the body URL is resolved
from storage, fetched from the content host, normalized and written back to
the cache. Cache failures are logged and treated as misses so a degraded Redis
never blocks reading.

Returns:
  - Content: The episode body
  - error: apperr.ErrNotFound for unknown episodes, UPSTREAM_FAILED when the
    content host cannot deliver
*/
func (service *Service) GetContent(context context.Context, episodeID string) (Content, error) {
	if err := (&validate.Validator{}).UUID("episode_id", episodeID).Err(); err != nil {
		return Content{}, err
	}

	if body, hit, err := service.cache.Get(context, episodeID); err != nil {
		service.logger.WarnContext(context, "episode_body_cache_read_failed",
			slog.String("episode_id", episodeID),
			slog.String("error", err.Error()),
		)
	} else if hit {
		return Content{EpisodeID: episodeID, Body: body}, nil
	}

	url, err := service.repo.GetBodyURL(context, episodeID)
	if err != nil {
		return Content{}, err
	}

	raw, err := service.fetcher.Fetch(context, url)
	if err != nil {
		return Content{}, apperr.UpstreamFailed("Episode content is temporarily unavailable", err)
	}

	body := NormalizeBody(raw)

	if err := service.cache.Set(context, episodeID, body); err != nil {
		service.logger.WarnContext(context, "episode_body_cache_write_failed",
			slog.String("episode_id", episodeID),
			slog.String("error", err.Error()),
		)
	}

	return Content{EpisodeID: episodeID, Body: body}, nil
}

/*
NormalizeBody cleans a raw body fetched from the content host.

Description: Upstream documents mix literal backslash-n sequences, CRLF line
endings and long runs of blank lines. Everything is folded to plain newlines
with at most one blank line between paragraphs, trimmed at both ends.
*/
func NormalizeBody(raw string) string {
	body := strings.ReplaceAll(raw, `\n`, "\n")
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	body = blankRuns.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}
