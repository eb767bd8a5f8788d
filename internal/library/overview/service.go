// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package overview

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/libraryofui/uilib/pkg/slice"
)

// Service implements the library aggregation logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an overview [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
GetLibrary assembles the aggregated library view for one reader.

Description: The favourite, bookmark and progress listings are fetched
concurrently; the lastRead and recentlyRead sections both derive from the
single progress listing. Each listing is filtered once by its row's resolved
predicate before assembly, so marks pointing at deleted novels or episodes
vanish from every section without failing the call.

Returns:
  - Library: The four-section view; all-empty for anonymous readers
  - error: Persistence failures
*/
func (service *Service) GetLibrary(context context.Context, userID string) (Library, error) {
	if userID == "" {
		return EmptyLibrary(), nil
	}

	var (
		favouriteRows []FavouriteRow
		bookmarkRows  []BookmarkRow
		progressRows  []ProgressRow
	)

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		var err error
		favouriteRows, err = service.repo.ListFavourites(groupContext, userID)
		return err
	})
	group.Go(func() error {
		var err error
		bookmarkRows, err = service.repo.ListBookmarks(groupContext, userID)
		return err
	})
	group.Go(func() error {
		var err error
		progressRows, err = service.repo.ListProgress(groupContext, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return Library{}, err
	}

	favouriteRows = slice.Filter(favouriteRows, FavouriteRow.resolved)
	bookmarkRows = slice.Filter(bookmarkRows, BookmarkRow.resolved)
	progressRows = slice.Filter(progressRows, ProgressRow.resolved)

	lastRead := buildLastRead(progressRows)

	library := Library{
		Favourites:   buildFavourites(favouriteRows),
		Bookmarks:    buildBookmarkGroups(bookmarkRows),
		LastRead:     lastRead,
		RecentlyRead: buildRecentlyRead(lastRead),
	}

	service.logger.DebugContext(context, "library_assembled",
		slog.String("user_id", userID),
		slog.Int("favourites", len(library.Favourites)),
		slog.Int("bookmark_groups", len(library.Bookmarks)),
		slog.Int("last_read", len(library.LastRead)),
	)

	return library, nil
}

// novelCard converts a resolved join into the shared novel card shape.
func novelCard(join *NovelJoin) Novel {
	tags := join.Tags
	if tags == nil {
		tags = []string{}
	}

	return Novel{
		ID:       join.ID,
		Title:    join.Title,
		Author:   join.Author,
		Tags:     tags,
		CoverURL: "",
	}
}

func buildFavourites(rows []FavouriteRow) []FavouriteEntry {
	favourites := make([]FavouriteEntry, 0, len(rows))
	for _, row := range rows {
		favourites = append(favourites, FavouriteEntry{
			NovelID: row.NovelID,
			Novel:   novelCard(row.Novel),
		})
	}

	return favourites
}

/*
buildBookmarkGroups groups bookmark rows by novel.

Description: Groups appear in the order their novel is first seen while
walking the rows; episodes accumulate into the existing group on later hits.
*/
func buildBookmarkGroups(rows []BookmarkRow) []BookmarkGroup {
	groups := make([]BookmarkGroup, 0)
	groupIndex := make(map[string]int)

	for _, row := range rows {
		episode := BookmarkedEpisode{
			EpisodeID:  row.EpisodeID,
			Title:      row.Episode.Title,
			Index:      row.Episode.Index,
			BookmarkID: row.BookmarkID,
		}

		if position, seen := groupIndex[row.Novel.ID]; seen {
			groups[position].Episodes = append(groups[position].Episodes, episode)
			continue
		}

		card := novelCard(row.Novel)
		groupIndex[row.Novel.ID] = len(groups)
		groups = append(groups, BookmarkGroup{
			NovelID:  card.ID,
			Title:    card.Title,
			Author:   card.Author,
			Tags:     card.Tags,
			Episodes: []BookmarkedEpisode{episode},
		})
	}

	return groups
}

func buildLastRead(rows []ProgressRow) []LastReadEntry {
	entries := make([]LastReadEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LastReadEntry{
			EpisodeID:      row.EpisodeID,
			ScrollPosition: row.ScrollPosition,
			Timestamp:      row.Timestamp,
			Episode: LastReadEpisode{
				EpisodeID: row.Episode.ID,
				Title:     row.Episode.Title,
				Index:     row.Episode.Index,
				NovelID:   row.Episode.NovelID,
				Novel:     novelCard(row.Novel),
			},
		})
	}

	return entries
}

/*
buildRecentlyRead derives the unique recently-read novel strip.

Description: Walks the already time-sorted lastRead entries and keeps the
first occurrence per distinct novel, so the strip is in recency order with no
duplicates.
*/
func buildRecentlyRead(lastRead []LastReadEntry) []Novel {
	novels := make([]Novel, 0)
	seen := make(map[string]struct{})

	for _, entry := range lastRead {
		if _, duplicate := seen[entry.Episode.Novel.ID]; duplicate {
			continue
		}
		seen[entry.Episode.Novel.ID] = struct{}{}
		novels = append(novels, entry.Episode.Novel)
	}

	return novels
}
