package journal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"lj2html/internal/output"
)

// File-name markers the exporter uses inside a dump directory.
const (
	entryPrefix    = "entry"
	commentsPrefix = "comments"
)

var commentsItemIDRe = regexp.MustCompile(`^comments[^0-9]*([0-9]+)`)

// Journal is the full collection of exported events, keyed by item id.
// It is built once per run from a dump directory and never persisted.
type Journal struct {
	events map[int]*Event
	logger Logger
}

func New(logger Logger) *Journal {
	return &Journal{
		events: make(map[int]*Event),
		logger: logger,
	}
}

// Populate scans dir and loads every entry and comment file. Entry files are
// processed first so that every comment batch finds its owning event; a batch
// whose item id has no event is a hard error. On duplicate item ids the
// last entry file wins.
func (j *Journal) Populate(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading dump directory: %w", err)
	}

	for _, de := range entries {
		if de.IsDir() || !strings.HasPrefix(de.Name(), entryPrefix) {
			continue
		}
		if err := j.loadEntry(filepath.Join(dir, de.Name())); err != nil {
			return fmt.Errorf("entry file %s: %w", de.Name(), err)
		}
	}

	for _, de := range entries {
		if de.IsDir() || !strings.HasPrefix(de.Name(), commentsPrefix) {
			continue
		}
		if err := j.loadComments(filepath.Join(dir, de.Name()), de.Name()); err != nil {
			return fmt.Errorf("comment file %s: %w", de.Name(), err)
		}
	}

	j.logger.Info("journal populated", "dir", dir, "events", len(j.events), "comments", j.CommentCount())
	return nil
}

func (j *Journal) loadEntry(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	event, err := ParseEvent(f)
	if err != nil {
		return err
	}
	j.events[event.ItemID] = event
	return nil
}

func (j *Journal) loadComments(path, name string) error {
	m := commentsItemIDRe.FindStringSubmatch(name)
	if m == nil {
		return fmt.Errorf("no item id in file name")
	}
	itemID, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("parsing item id: %w", err)
	}

	event, found := j.events[itemID]
	if !found {
		return fmt.Errorf("no entry with item id %d", itemID)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	comments, err := ParseComments(f)
	if err != nil {
		return err
	}
	for _, c := range comments {
		event.AddComment(c)
	}
	return nil
}

// Events returns the loaded events in unspecified order.
func (j *Journal) Events() []*Event {
	events := make([]*Event, 0, len(j.events))
	for _, e := range j.events {
		events = append(events, e)
	}
	return events
}

// EventCount returns the number of loaded events.
func (j *Journal) EventCount() int { return len(j.events) }

// CommentCount returns the total number of comments across all events.
func (j *Journal) CommentCount() int {
	total := 0
	for _, e := range j.events {
		total += e.CommentCount()
	}
	return total
}

// Render writes one HTML file per event to target, named by the final path
// segment of the event's source URL. It returns how many files were written
// and how many were already up to date. Events render in unspecified order;
// each event is independent of the others.
func (j *Journal) Render(target output.Target, pattern string) (written, unchanged int, err error) {
	var buf bytes.Buffer
	for _, e := range j.events {
		buf.Reset()
		if err := e.Render(&buf, pattern, j.logger); err != nil {
			return written, unchanged, err
		}

		name := e.OutputName()
		wrote, err := target.Write(name, buf.Bytes())
		if err != nil {
			return written, unchanged, fmt.Errorf("writing %s: %w", name, err)
		}
		if wrote {
			written++
			j.logger.Debug("rendered entry", "item_id", e.ItemID, "file", name)
		} else {
			unchanged++
			j.logger.Debug("entry unchanged", "item_id", e.ItemID, "file", name)
		}
	}
	return written, unchanged, nil
}

// Known hosting domains and their profile-URL patterns.
var knownPatterns = []struct {
	domain  string
	pattern string
}{
	{"livejournal.com", "https://{}.livejournal.com/profile"},
	{"dreamwidth.org", "https://{}.dreamwidth.org/profile"},
}

// InferUserPattern guesses a profile-URL pattern from the source URL of one
// event, picked in map iteration order. It returns "" when that event's URL
// matches no known hosting domain; other events are not consulted. This is a
// convenience default for dumps from the two big hosting services, nothing
// more.
func (j *Journal) InferUserPattern() string {
	for _, e := range j.events {
		for _, kp := range knownPatterns {
			if strings.Contains(e.URL, kp.domain) {
				return kp.pattern
			}
		}
		return ""
	}
	return ""
}
