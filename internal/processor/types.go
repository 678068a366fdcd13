package processor

import "log/slog"

// Options is the run configuration. It is fixed for one invocation.
type Options struct {
	Root        string
	Pattern     string
	Replacement *string
	Recurse     bool
	Preview     bool
	Logger      *slog.Logger
}

type EventKind int

const (
	EventSkipped EventKind = iota
	EventNoMatch
	EventMatch
	EventPreview
	EventRename
)

func (k EventKind) String() string {
	switch k {
	case EventSkipped:
		return "skipped"
	case EventNoMatch:
		return "no-match"
	case EventMatch:
		return "match"
	case EventPreview:
		return "preview"
	case EventRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event describes the outcome for one traversal entry. Parent and Name are
// empty for entries skipped before a leaf name could be extracted.
type Event struct {
	Kind    EventKind
	Path    string
	Parent  string
	Name    string
	NewName string
	Err     error
}

type Summary struct {
	Scanned int
	Skipped int
	Matched int
	Renamed int
}

// Reporter receives one Event per traversal entry, in walk order.
type Reporter interface {
	Report(Event)
}

type ReporterFunc func(Event)

func (f ReporterFunc) Report(ev Event) { f(ev) }
