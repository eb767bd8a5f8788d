package schema

// CoreEpisodeTable represents the 'core.episode' table
type CoreEpisodeTable struct {
	Table     string
	ID        string
	NovelID   string
	SeasonID  string
	Title     string
	Body      string
	Index     string
	CreatedAt string
}

// CoreEpisode is the schema definition for core.episode
var CoreEpisode = CoreEpisodeTable{
	Table:     "core.episode",
	ID:        "id",
	NovelID:   "novelid",
	SeasonID:  "seasonid",
	Title:     "title",
	Body:      "body",
	Index:     "episodeindex",
	CreatedAt: "createdat",
}

func (t CoreEpisodeTable) Columns() []string {
	return []string{t.ID, t.NovelID, t.SeasonID, t.Title, t.Body, t.Index, t.CreatedAt}
}
