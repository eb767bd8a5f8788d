// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryofui/uilib/internal/platform/apperr"
)

const testEpisodeID = "5f0c2c6e-9a42-7cc0-8f33-aaaaaaaaaaaa"

// fakeRepository maps episode ids to body URLs.
type fakeRepository struct {
	urls map[string]string
}

func (f *fakeRepository) GetBodyURL(_ context.Context, episodeID string) (string, error) {
	url, ok := f.urls[episodeID]
	if !ok {
		return "", apperr.NotFound("Episode not found")
	}
	return url, nil
}

// fakeCache is an in-memory BodyCache with optional forced failures.
type fakeCache struct {
	entries map[string]string
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, episodeID string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	body, ok := f.entries[episodeID]
	return body, ok, nil
}

func (f *fakeCache) Set(_ context.Context, episodeID, body string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[episodeID] = body
	return nil
}

// fakeFetcher serves one canned document and counts calls.
type fakeFetcher struct {
	document string
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.document, nil
}

func newService(repo Repository, cache BodyCache, fetcher BodyFetcher) *Service {
	return NewService(repo, cache, fetcher, slog.New(slog.DiscardHandler))
}

/*
TestGetContent_FetchAndCache verifies a cold read fetches, normalizes and
caches the body.
*/
func TestGetContent_FetchAndCache(t *testing.T) {
	repo := &fakeRepository{urls: map[string]string{testEpisodeID: "https://content.example/ep"}}
	cache := newFakeCache()
	fetcher := &fakeFetcher{document: "First line.\\nSecond line.\r\n\r\n\r\n\r\nThird line.\n"}
	service := newService(repo, cache, fetcher)

	content, err := service.GetContent(context.Background(), testEpisodeID)
	require.NoError(t, err)

	assert.Equal(t, "First line.\nSecond line.\n\nThird line.", content.Body)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, content.Body, cache.entries[testEpisodeID])
}

/*
TestGetContent_CacheHit verifies a warm read never touches the fetcher.
*/
func TestGetContent_CacheHit(t *testing.T) {
	repo := &fakeRepository{urls: map[string]string{testEpisodeID: "https://content.example/ep"}}
	cache := newFakeCache()
	cache.entries[testEpisodeID] = "Cached body."
	fetcher := &fakeFetcher{document: "Fresh body."}
	service := newService(repo, cache, fetcher)

	content, err := service.GetContent(context.Background(), testEpisodeID)
	require.NoError(t, err)

	assert.Equal(t, "Cached body.", content.Body)
	assert.Zero(t, fetcher.calls)
}

/*
TestGetContent_CacheFailuresDegrade verifies broken cache reads and writes
fall back to fetching instead of failing the request.
*/
func TestGetContent_CacheFailuresDegrade(t *testing.T) {
	repo := &fakeRepository{urls: map[string]string{testEpisodeID: "https://content.example/ep"}}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	fetcher := &fakeFetcher{document: "Body."}
	service := newService(repo, cache, fetcher)

	content, err := service.GetContent(context.Background(), testEpisodeID)
	require.NoError(t, err)

	assert.Equal(t, "Body.", content.Body)
	assert.Equal(t, 1, fetcher.calls)
}

/*
TestGetContent_UpstreamFailure verifies fetch failures surface as an upstream
error, not an internal one.
*/
func TestGetContent_UpstreamFailure(t *testing.T) {
	repo := &fakeRepository{urls: map[string]string{testEpisodeID: "https://content.example/ep"}}
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	service := newService(repo, newFakeCache(), fetcher)

	_, err := service.GetContent(context.Background(), testEpisodeID)
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_FAILED", apperr.As(err).Code)
}

/*
TestGetContent_UnknownEpisode verifies unknown ids surface as not-found before
any fetch happens.
*/
func TestGetContent_UnknownEpisode(t *testing.T) {
	fetcher := &fakeFetcher{}
	service := newService(&fakeRepository{}, newFakeCache(), fetcher)

	_, err := service.GetContent(context.Background(), "5f0c2c6e-9a42-7cc0-8f33-bbbbbbbbbbbb")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Zero(t, fetcher.calls)
}

/*
TestNormalizeBody table-drives the newline cleanup rules.
*/
func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "literal escapes", raw: `one\ntwo`, want: "one\ntwo"},
		{name: "crlf", raw: "one\r\ntwo\rthree", want: "one\ntwo\nthree"},
		{name: "blank runs collapse", raw: "one\n\n\n\n\ntwo", want: "one\n\ntwo"},
		{name: "trimmed", raw: "\n\n  body  \n\n", want: "body"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBody(tt.raw))
		})
	}
}
