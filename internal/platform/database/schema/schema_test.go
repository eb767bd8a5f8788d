// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestDescriptors_TableNames verifies every descriptor names its table with the
schema qualifier, since the stores splice Table straight into their queries.
*/
func TestDescriptors_TableNames(t *testing.T) {
	tables := map[string]string{
		CoreNovel.Table:        "core.",
		CoreSeason.Table:       "core.",
		CoreEpisode.Table:      "core.",
		LibraryBookmark.Table:  "library.",
		LibraryFavourite.Table: "library.",
		LibraryLastRead.Table:  "library.",
		CommunityNotice.Table:  "community.",
		CommunitySupport.Table: "community.",
	}

	for table, prefix := range tables {
		assert.True(t, strings.HasPrefix(table, prefix), "table %q should live in schema %q", table, prefix)
	}
}

/*
TestDescriptors_Columns verifies the column sets the stores build their SQL
from, against the names the initial migration creates.
*/
func TestDescriptors_Columns(t *testing.T) {
	assert.Equal(t, []string{"id", "title", "authorname", "synopsis", "tags", "createdat"}, CoreNovel.Columns())
	assert.Equal(t, []string{"id", "novelid", "type", "seasonnumber", "name", "sequence"}, CoreSeason.Columns())
	assert.Equal(t, []string{"id", "novelid", "seasonid", "title", "body", "episodeindex", "createdat"}, CoreEpisode.Columns())
	assert.Equal(t, []string{"id", "userid", "episodeid", "createdat"}, LibraryBookmark.Columns())
	assert.Equal(t, []string{"id", "userid", "novelid", "createdat"}, LibraryFavourite.Columns())
	assert.Equal(t, []string{"id", "userid", "episodeid", "scrollposition", "timestamp"}, LibraryLastRead.Columns())
	assert.Equal(t, []string{"id", "title", "body", "active", "createdat"}, CommunityNotice.Columns())
	assert.Equal(t, []string{"id", "type", "body", "createdat"}, CommunitySupport.Columns())
}
