package schema

// CoreNovelTable represents the 'core.novel' table
type CoreNovelTable struct {
	Table      string
	ID         string
	Title      string
	AuthorName string
	Synopsis   string
	Tags       string
	CreatedAt  string
}

// CoreNovel is the schema definition for core.novel
var CoreNovel = CoreNovelTable{
	Table:      "core.novel",
	ID:         "id",
	Title:      "title",
	AuthorName: "authorname",
	Synopsis:   "synopsis",
	Tags:       "tags",
	CreatedAt:  "createdat",
}

func (t CoreNovelTable) Columns() []string {
	return []string{t.ID, t.Title, t.AuthorName, t.Synopsis, t.Tags, t.CreatedAt}
}
