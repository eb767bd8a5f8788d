// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package novel

import "context"

// Filter narrows the catalogue listing.
type Filter struct {
	// Keyword is matched case-insensitively against title, author and
	// synopsis. Empty means no keyword restriction.
	Keyword string
}

// Repository defines the data access contract for the novel catalogue.
type Repository interface {

	// List returns a filtered, paginated page of novels, newest first, and
	// the total count matching the filter.
	List(context context.Context, filter Filter, limit, offset int) ([]Summary, int, error)

	// GetByID returns one novel's summary. Missing novels surface as
	// dberr.ErrNotFound.
	GetByID(context context.Context, novelID string) (Summary, error)

	// ListSeasons returns a novel's seasons in sequence order.
	ListSeasons(context context.Context, novelID string) ([]Season, error)

	// ListEpisodes returns a novel's episodes in index order. An empty
	// userID marks every episode unbookmarked.
	ListEpisodes(context context.Context, novelID, userID string) ([]Episode, error)
}
