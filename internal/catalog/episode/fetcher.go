// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/libraryofui/uilib/internal/platform/constants"
)

// maxBodyBytes caps an upstream document at 4 MiB; anything larger is not a
// plausible episode.
const maxBodyBytes = 4 << 20

// HTTPBodyFetcher implements the BodyFetcher interface against the external
// content host.
type HTTPBodyFetcher struct {
	client *http.Client
}

// NewHTTPBodyFetcher creates a fetcher with the standard upstream timeout.
func NewHTTPBodyFetcher() *HTTPBodyFetcher {
	return &HTTPBodyFetcher{
		client: &http.Client{Timeout: constants.EpisodeBodyFetchTimeout},
	}
}

/*
Fetch downloads a raw episode body.

Returns:
  - string: The raw document
  - error: Transport failures or non-200 upstream statuses
*/
func (fetcher *HTTPBodyFetcher) Fetch(context context.Context, url string) (string, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("episode_body_request_failed: %w", err)
	}

	response, err := fetcher.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("episode_body_fetch_failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("episode_body_fetch_failed: upstream status %d", response.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("episode_body_read_failed: %w", err)
	}

	return string(raw), nil
}
