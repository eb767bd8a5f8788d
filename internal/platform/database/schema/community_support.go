package schema

// CommunitySupportTable represents the 'community.support' table
type CommunitySupportTable struct {
	Table     string
	ID        string
	Type      string
	Body      string
	CreatedAt string
}

// CommunitySupport is the schema definition for community.support
var CommunitySupport = CommunitySupportTable{
	Table:     "community.support",
	ID:        "id",
	Type:      "type",
	Body:      "body",
	CreatedAt: "createdat",
}

func (t CommunitySupportTable) Columns() []string {
	return []string{t.ID, t.Type, t.Body, t.CreatedAt}
}
