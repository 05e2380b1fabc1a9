package journal

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Exported entry files carry a single <entry> element; comment files carry a
// <comments> element wrapping <comment> records. Any other root element is a
// malformed export and aborts the run.

type xmlEvent struct {
	XMLName         xml.Name `xml:"entry"`
	ItemID          int      `xml:"itemid"`
	EventTime       string   `xml:"eventtime"`
	Subject         string   `xml:"subject"`
	Body            string   `xml:"event"`
	URL             string   `xml:"url"`
	ImportSource    string   `xml:"import_source"`
	OptPreformatted int      `xml:"opt_preformatted"`
}

type xmlComment struct {
	ID       string `xml:"id"`
	ParentID string `xml:"parentid"`
	Date     string `xml:"date"`
	Subject  string `xml:"subject"`
	Body     string `xml:"body"`
	User     string `xml:"user"`
	State    string `xml:"state"`
}

type xmlCommentBatch struct {
	XMLName  xml.Name     `xml:"comments"`
	Comments []xmlComment `xml:"comment"`
}

// ParseEvent decodes one exported entry file.
func ParseEvent(r io.Reader) (*Event, error) {
	var raw xmlEvent
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding entry: %w", err)
	}

	return &Event{
		ItemID:       raw.ItemID,
		EventTime:    raw.EventTime,
		Subject:      raw.Subject,
		Body:         raw.Body,
		URL:          raw.URL,
		ImportSource: raw.ImportSource,
		Preformatted: raw.OptPreformatted != 0,
	}, nil
}

// ParseComments decodes one exported comment-batch file.
func ParseComments(r io.Reader) ([]*Comment, error) {
	var raw xmlCommentBatch
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}

	comments := make([]*Comment, 0, len(raw.Comments))
	for _, rc := range raw.Comments {
		user := rc.User
		if user == "" {
			user = UnknownUser
		}
		comments = append(comments, &Comment{
			ID:       rc.ID,
			ParentID: rc.ParentID,
			Date:     rc.Date,
			Subject:  rc.Subject,
			Body:     rc.Body,
			User:     user,
			State:    rc.State,
		})
	}
	return comments, nil
}
