package processor

import (
	"context"
	"errors"
	"log/slog"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"renamefiles/internal/logging"
	"renamefiles/internal/pattern"
	"renamefiles/internal/walk"
)

var (
	ErrNoLeafName  = errors.New("entry has no leaf name")
	ErrInvalidName = errors.New("entry name is not valid UTF-8")

	// ErrInvalidNewName is returned when a substitution does not yield a
	// plain leaf name. The run stops, as it would for a failed rename.
	ErrInvalidNewName = errors.New("replacement does not produce a valid leaf name")
)

// Run walks opts.Root contents-first and applies the guard chain to each
// entry: walk error, leaf name, encoding, match. Matches are reported,
// previewed or renamed depending on opts. Configuration errors are
// returned before fsys is touched. A failed rename aborts the run and its
// error is returned unchanged; renames already done are kept. The summary
// is valid even when an error is returned.
func Run(ctx context.Context, fsys afero.Fs, opts Options, reporter Reporter) (Summary, error) {
	pat, err := pattern.Compile(opts.Pattern)
	if err != nil {
		return Summary{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if opts.Replacement != nil {
		if err := pattern.CheckTemplate(*opts.Replacement); err != nil {
			var ambErr *pattern.AmbiguousSyntaxError
			if errors.As(err, &ambErr) {
				logger.Debug("replacement rejected",
					"reference", ambErr.Reference,
					"read_as", ambErr.ReadAs,
				)
			}
			return Summary{}, err
		}
	}

	if reporter == nil {
		reporter = ReporterFunc(func(Event) {})
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	logger.Debug("walking", "root", root, "recurse", opts.Recurse, "preview", opts.Preview)

	p := &pipeline{
		fsys:     fsys,
		pat:      pat,
		opts:     opts,
		log:      logger,
		reporter: reporter,
	}

	for entry := range walk.Enumerate(fsys, root, opts.Recurse) {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return p.summary, err
			}
		}
		if err := p.process(entry); err != nil {
			return p.summary, err
		}
	}

	return p.summary, nil
}

type pipeline struct {
	fsys     afero.Fs
	pat      *pattern.Pattern
	opts     Options
	log      *slog.Logger
	reporter Reporter
	summary  Summary
}

func (p *pipeline) process(entry walk.Entry) error {
	p.summary.Scanned++

	if entry.Err != nil {
		p.log.Error("error encountered while walking dir", "path", entry.Path, "err", entry.Err)
		p.skip(Event{Path: entry.Path, Err: entry.Err})
		return nil
	}

	parent, name, ok := splitLeaf(entry.Path)
	if !ok {
		p.log.Error("entry has no leaf name", "path", entry.Path)
		p.skip(Event{Path: entry.Path, Err: ErrNoLeafName})
		return nil
	}

	if !utf8.ValidString(name) {
		p.log.Error("entry name could not be read as text", "path", entry.Path)
		p.skip(Event{Path: entry.Path, Parent: parent, Err: ErrInvalidName})
		return nil
	}

	ev := Event{Path: entry.Path, Parent: parent, Name: name}

	if !p.pat.Find(name) {
		logging.Trace(p.log, "no match", "entry", entry.Path)
		ev.Kind = EventNoMatch
		p.reporter.Report(ev)
		return nil
	}

	p.summary.Matched++

	if p.opts.Replacement == nil {
		ev.Kind = EventMatch
		p.reporter.Report(ev)
		return nil
	}

	ev.NewName = p.pat.Substitute(name, *p.opts.Replacement)
	if !validLeaf(ev.NewName) {
		return fmt.Errorf("%w: %s ~~> %q", ErrInvalidNewName, entry.Path, ev.NewName)
	}

	if p.opts.Preview {
		ev.Kind = EventPreview
		p.reporter.Report(ev)
		return nil
	}

	ev.Kind = EventRename
	p.reporter.Report(ev)
	if err := p.fsys.Rename(entry.Path, filepath.Join(parent, ev.NewName)); err != nil {
		return err
	}
	p.summary.Renamed++
	return nil
}

func (p *pipeline) skip(ev Event) {
	ev.Kind = EventSkipped
	p.summary.Skipped++
	p.reporter.Report(ev)
}

func splitLeaf(path string) (string, string, bool) {
	name := filepath.Base(path)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", "", false
	}
	return filepath.Dir(path), name, true
}

// validLeaf rejects names that would move an entry out of its parent or
// onto the parent itself.
func validLeaf(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
