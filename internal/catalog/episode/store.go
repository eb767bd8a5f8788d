// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package episode

import "context"

// Repository defines the data access contract for episode metadata.
type Repository interface {

	// GetBodyURL returns the content host URL of one episode's body.
	// Missing episodes surface as dberr.ErrNotFound.
	GetBodyURL(context context.Context, episodeID string) (string, error)
}

// BodyCache is the volatile store for fetched episode bodies.
type BodyCache interface {

	// Get returns the cached body; the second result is false on a miss.
	Get(context context.Context, episodeID string) (string, bool, error)

	// Set stores the body under the episode's cache key with a TTL.
	Set(context context.Context, episodeID, body string) error
}

// BodyFetcher retrieves a raw episode body from the external content host.
type BodyFetcher interface {
	Fetch(context context.Context, url string) (string, error)
}
