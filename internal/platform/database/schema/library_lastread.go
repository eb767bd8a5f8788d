package schema

// LibraryLastReadTable represents the 'library.lastread' table
type LibraryLastReadTable struct {
	Table          string
	ID             string
	UserID         string
	EpisodeID      string
	ScrollPosition string
	Timestamp      string
}

// LibraryLastRead is the schema definition for library.lastread
//
// Timestamp is stored as Unix seconds (bigint), assigned server-side at
// write time.
var LibraryLastRead = LibraryLastReadTable{
	Table:          "library.lastread",
	ID:             "id",
	UserID:         "userid",
	EpisodeID:      "episodeid",
	ScrollPosition: "scrollposition",
	Timestamp:      "timestamp",
}

func (t LibraryLastReadTable) Columns() []string {
	return []string{t.ID, t.UserID, t.EpisodeID, t.ScrollPosition, t.Timestamp}
}
