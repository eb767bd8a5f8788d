// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package account manages the library data this service owns for a reader.

Identity itself lives with the external identity provider; what this service
holds for a user is their marks and reading progress. Account deletion here
means clearing those rows, so a provider-side deletion leaves nothing behind.
*/
package account

// DeletionReport summarises what a data deletion removed.
type DeletionReport struct {
	Bookmarks  int64 `json:"bookmarks"`
	Favourites int64 `json:"favourites"`
	LastRead   int64 `json:"last_read"`
}
