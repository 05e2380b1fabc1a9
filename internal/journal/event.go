package journal

import (
	"fmt"
	"sort"
	"strings"
)

// Event is one journal entry plus the flat set of comments attached to it.
// Comments are collected incrementally via AddComment; the ordered forest of
// top-level comments is derived on demand by BuildForest.
type Event struct {
	ItemID       int
	EventTime    string
	Subject      string
	Body         string
	URL          string
	ImportSource string
	Preformatted bool

	comments map[string]*Comment
	forest   []*Comment
}

// AddComment attaches a comment record to this event. A comment with a
// duplicate id replaces the earlier one.
func (e *Event) AddComment(c *Comment) {
	if e.comments == nil {
		e.comments = make(map[string]*Comment)
	}
	e.comments[c.ID] = c
}

// CommentCount returns the number of comment records attached to this event.
func (e *Event) CommentCount() int { return len(e.comments) }

// OutputName returns the file name this event renders to: the final path
// segment of the event's source URL.
func (e *Event) OutputName() string {
	return e.URL[strings.LastIndex(e.URL, "/")+1:]
}

// BuildForest organizes the flat comment set into the rendering forest.
// It sorts all comments by the order defined on Comment, resets every
// children list, then appends each comment either to the forest root or to
// its parent. A single sorted pass is enough: children inherit the relative
// order of the flat sort, so no per-subtree sort is needed. Calling
// BuildForest again fully rebuilds the forest, so it is idempotent.
//
// A comment whose parent id does not resolve within this event is promoted
// to the forest root; logger receives a warning for each such promotion.
func (e *Event) BuildForest(logger Logger) {
	all := make([]*Comment, 0, len(e.comments))
	for _, c := range e.comments {
		all = append(all, c)
		c.Children = nil
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].less(all[j]) })

	e.forest = nil
	for _, c := range all {
		if c.topLevel() {
			e.forest = append(e.forest, c)
			continue
		}
		parent, found := e.comments[c.ParentID]
		if !found || parent == c {
			logger.Warn("comment parent not found, promoting to top level",
				"item_id", e.ItemID, "comment_id", c.ID, "parent_id", c.ParentID)
			e.forest = append(e.forest, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}
}

// Forest returns the ordered top-level comments from the last BuildForest call.
func (e *Event) Forest() []*Comment { return e.forest }

// applyPattern substitutes the mangled form of name into the {} slot of a
// profile-URL pattern.
func applyPattern(pattern, name string) string {
	label := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	return strings.Replace(pattern, "{}", label, 1)
}

// nlToBr converts newlines into HTML line breaks.
func nlToBr(s string) string {
	return strings.ReplaceAll(s, "\n", "<br />")
}

func (e *Event) String() string {
	return fmt.Sprintf("event %d (%s, %d comments)", e.ItemID, e.OutputName(), len(e.comments))
}
