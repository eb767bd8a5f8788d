package schema

// LibraryFavouriteTable represents the 'library.favourite' table
type LibraryFavouriteTable struct {
	Table     string
	ID        string
	UserID    string
	NovelID   string
	CreatedAt string
}

// LibraryFavourite is the schema definition for library.favourite
var LibraryFavourite = LibraryFavouriteTable{
	Table:     "library.favourite",
	ID:        "id",
	UserID:    "userid",
	NovelID:   "novelid",
	CreatedAt: "createdat",
}

func (t LibraryFavouriteTable) Columns() []string {
	return []string{t.ID, t.UserID, t.NovelID, t.CreatedAt}
}
