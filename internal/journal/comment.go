package journal

// UnknownUser is the display name used when a comment record carries no user.
const UnknownUser = "(unknown)"

// Comment is one reader comment attached to an Event. All fields are opaque
// strings from the export; an empty string means the field was absent.
// Children is assigned during forest construction and holds non-owning
// references to sibling comments of the same Event.
type Comment struct {
	ID       string
	ParentID string
	Date     string
	Subject  string
	Body     string
	User     string
	State    string

	Children []*Comment
}

// less defines the total order used for forest construction: dated comments
// sort before undated ones, undated comments compare by ID, and dated
// comments compare by date (the export format is lexicographically
// chronological) with ID breaking exact-date ties.
func (c *Comment) less(o *Comment) bool {
	if c.Date == "" && o.Date == "" {
		return c.ID < o.ID
	}
	if c.Date == "" {
		return false
	}
	if o.Date == "" {
		return true
	}
	if c.Date != o.Date {
		return c.Date < o.Date
	}
	return c.ID < o.ID
}

// topLevel reports whether this comment belongs at the root of the forest.
// A comment with no parent is top-level; so is a comment with an empty
// subject, even when it carries a parent id.
func (c *Comment) topLevel() bool {
	return c.ParentID == "" || c.Subject == ""
}
