package app

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"lj2html/internal/config"
	"lj2html/internal/journal"
	"lj2html/internal/output"

	"github.com/google/uuid"
)

// App is the application layer between the CLI and the journal package.
// It loads config, owns the run logger, and exposes the high-level
// operations the commands call. The caller must call Close when done.
type App struct {
	Cfg *config.Config

	logger  *slog.Logger
	jlog    journal.Logger
	logFile *os.File
	op      *Operation
}

// New creates an App for one CLI invocation. operation identifies the
// command being run (e.g. "Convert", "List").
func New(cfg *config.Config, operation, parameters string) (*App, error) {
	runID := uuid.New().String()

	logger, logFile, err := newLogger(cfg.LogDir, runID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	op := NewOperation(runID, operation, parameters)
	logger.Info("operation started", "operation", op.Name, "parameters", op.Parameters)

	return &App{
		Cfg:     cfg,
		logger:  logger,
		jlog:    &slogAdapter{l: logger},
		logFile: logFile,
		op:      op,
	}, nil
}

// ConvertResult summarizes one conversion run.
type ConvertResult struct {
	Events    int
	Comments  int
	Written   int
	Unchanged int
}

// Convert renders every entry in inDir as an HTML file in outDir. pattern is
// the profile-URL pattern from the command line; when empty, the config
// default applies, and failing that a pattern is inferred from the dump.
func (a *App) Convert(inDir, outDir, pattern string) (ConvertResult, error) {
	j := journal.New(a.jlog)
	if err := j.Populate(inDir); err != nil {
		a.op.Fail()
		return ConvertResult{}, err
	}

	if pattern == "" {
		pattern = a.Cfg.UserPattern
	}
	if pattern == "" {
		pattern = j.InferUserPattern()
		if pattern != "" {
			a.logger.Info("inferred user pattern", "pattern", pattern)
		}
	}

	target, err := output.NewDir(outDir)
	if err != nil {
		a.op.Fail()
		return ConvertResult{}, err
	}

	written, unchanged, err := j.Render(target, pattern)
	if err != nil {
		a.op.Fail()
		return ConvertResult{}, err
	}

	return ConvertResult{
		Events:    j.EventCount(),
		Comments:  j.CommentCount(),
		Written:   written,
		Unchanged: unchanged,
	}, nil
}

// EventSummary describes one entry for the list command.
type EventSummary struct {
	ItemID   int
	Date     string
	Subject  string
	Comments int
	File     string
}

// List loads the dump in inDir and returns a summary per entry, sorted by
// item id for presentation.
func (a *App) List(inDir string) ([]EventSummary, error) {
	j := journal.New(a.jlog)
	if err := j.Populate(inDir); err != nil {
		a.op.Fail()
		return nil, err
	}

	events := j.Events()
	summaries := make([]EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, EventSummary{
			ItemID:   e.ItemID,
			Date:     e.EventTime,
			Subject:  e.Subject,
			Comments: e.CommentCount(),
			File:     e.OutputName(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ItemID < summaries[j].ItemID })
	return summaries, nil
}

// Close finalizes the operation record and closes the log file.
func (a *App) Close() error {
	a.logger.Info("operation finished", "operation", a.op.Name, "status", a.op.Status)
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
