package journal

import (
	"fmt"
	"html"
	"html/template"
	"io"
)

// The page is fully self-contained: the stylesheet is embedded and no
// external assets are referenced, so a rendered archive can be browsed
// straight off a disk.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 48em; color: #222; }
table.meta td { padding: 0 0.5em 0 0; color: #555; }
p.pre { font-family: monospace; }
div.comment { margin: 1em 0 1em 2em; padding-left: 1em; border-left: 2px solid #ccc; }
table.commenthead td { padding: 0 0.5em 0 0; font-size: 90%; color: #555; }
a.user { font-weight: bold; }
hr { border: 0; border-top: 1px solid #ccc; margin: 2em 0; }
</style>
</head>
<body>
{{if .Subject}}<h1>{{.Subject}}</h1>
{{end}}<table class="meta">
<tr><td>Date:</td><td>{{.Date}}</td></tr>
<tr><td>Link:</td><td><a href="{{.URL}}">{{.URL}}</a></td></tr>
{{if .ImportSource}}<tr><td>Imported from:</td><td>{{.ImportSource}}</td></tr>
{{end}}</table>
{{if .Preformatted}}<p class="pre">{{.Body}}</p>
{{else}}{{.Body}}
{{end}}{{if .Comments}}<hr />
{{range .Comments}}{{template "comment" .}}{{end}}{{end}}</body>
</html>
`

const commentTemplate = `{{define "comment"}}<div class="comment">
<table class="commenthead">
<tr><td>From:</td><td>{{.User}}</td></tr>
{{if .Date}}<tr><td>Date:</td><td>{{.Date}}</td></tr>
{{end}}{{if .Subject}}<tr><td>Subject:</td><td>{{.Subject}}</td></tr>
{{end}}</table>
{{if .Body}}<p>{{.Body}}</p>
{{end}}{{range .Children}}{{template "comment" .}}{{end}}</div>
{{end}}`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate + commentTemplate))

// eventPage is the template model for one rendered entry. Body and the
// comment bodies are template.HTML: entry text in the export is already HTML
// and passes through as-is after user-reference expansion.
type eventPage struct {
	Title        string
	Subject      string
	Date         string
	URL          string
	ImportSource string
	Preformatted bool
	Body         template.HTML
	Comments     []*commentView
}

type commentView struct {
	User     template.HTML
	Date     string
	Subject  string
	Body     template.HTML
	Children []*commentView
}

// Render writes a complete HTML document for this event, comments included,
// to w. pattern is the profile-URL pattern handed to the user-reference
// expander; it may be empty.
func (e *Event) Render(w io.Writer, pattern string, logger Logger) error {
	e.BuildForest(logger)

	page := eventPage{
		Title:        e.Subject,
		Subject:      e.Subject,
		Date:         e.EventTime,
		URL:          e.URL,
		ImportSource: e.ImportSource,
		Preformatted: e.Preformatted,
	}
	if page.Title == "" {
		page.Title = fmt.Sprintf("Entry %d", e.ItemID)
	}

	if e.Preformatted {
		page.Body = template.HTML(nlToBr(e.Body))
	} else {
		expanded, err := ExpandUserRefs(e.Body, pattern)
		if err != nil {
			return fmt.Errorf("expanding entry %d body: %w", e.ItemID, err)
		}
		page.Body = template.HTML(expanded)
	}

	for _, c := range e.forest {
		view, err := newCommentView(c, pattern)
		if err != nil {
			return fmt.Errorf("rendering comments of entry %d: %w", e.ItemID, err)
		}
		page.Comments = append(page.Comments, view)
	}

	if err := pageTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("executing page template for entry %d: %w", e.ItemID, err)
	}
	return nil
}

// newCommentView converts a comment subtree into its template model.
// The commenter name becomes a profile link when a pattern is available;
// the linked display name is deliberately not re-escaped.
func newCommentView(c *Comment, pattern string) (*commentView, error) {
	view := &commentView{
		Date:    c.Date,
		Subject: c.Subject,
	}

	if pattern == "" {
		view.User = template.HTML(html.EscapeString(c.User))
	} else {
		href := applyPattern(pattern, c.User)
		view.User = template.HTML(`<a href="` + html.EscapeString(href) + `">` + c.User + `</a>`)
	}

	if c.Body != "" {
		expanded, err := ExpandUserRefs(c.Body, pattern)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", c.ID, err)
		}
		view.Body = template.HTML(nlToBr(expanded))
	}

	for _, child := range c.Children {
		childView, err := newCommentView(child, pattern)
		if err != nil {
			return nil, err
		}
		view.Children = append(view.Children, childView)
	}
	return view, nil
}
