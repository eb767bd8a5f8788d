package schema

// CoreSeasonTable represents the 'core.season' table
type CoreSeasonTable struct {
	Table        string
	ID           string
	NovelID      string
	Type         string
	SeasonNumber string
	Name         string
	Sequence     string
}

// CoreSeason is the schema definition for core.season
var CoreSeason = CoreSeasonTable{
	Table:        "core.season",
	ID:           "id",
	NovelID:      "novelid",
	Type:         "type",
	SeasonNumber: "seasonnumber",
	Name:         "name",
	Sequence:     "sequence",
}

func (t CoreSeasonTable) Columns() []string {
	return []string{t.ID, t.NovelID, t.Type, t.SeasonNumber, t.Name, t.Sequence}
}
