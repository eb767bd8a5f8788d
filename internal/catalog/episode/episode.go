// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

/*
Package episode serves episode reading content.

An episode row stores a URL pointing at the markdown body on the external
content host, not the text itself. Reads resolve the URL, fetch the body,
normalize its newlines and cache the result in Redis so repeated opens of the
same episode do not hammer the host.
*/
package episode

// Content is the reader-facing episode body.
type Content struct {
	EpisodeID string `json:"episode_id"`
	Body      string `json:"body"`
}
