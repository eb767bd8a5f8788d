package schema

// CommunityNoticeTable represents the 'community.notice' table
type CommunityNoticeTable struct {
	Table     string
	ID        string
	Title     string
	Body      string
	Active    string
	CreatedAt string
}

// CommunityNotice is the schema definition for community.notice
var CommunityNotice = CommunityNoticeTable{
	Table:     "community.notice",
	ID:        "id",
	Title:     "title",
	Body:      "body",
	Active:    "active",
	CreatedAt: "createdat",
}

func (t CommunityNoticeTable) Columns() []string {
	return []string{t.ID, t.Title, t.Body, t.Active, t.CreatedAt}
}
