package tui

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"renamefiles/internal/pattern"
	"renamefiles/internal/processor"
)

// Line renders the report line for ev. Skipped and non-matching entries
// have no line; they only show up in logs.
func (s Styles) Line(ev processor.Event) (string, bool) {
	switch ev.Kind {
	case processor.EventMatch:
		return s.Label.Render("Match found: ") + s.Dim.Render(ev.Parent+string(filepath.Separator)) + s.Match.Render(ev.Name), true
	case processor.EventPreview:
		return s.Label.Render("Would rename: ") + s.mapping(ev), true
	case processor.EventRename:
		return s.Label.Render("Renaming: ") + s.mapping(ev), true
	default:
		return "", false
	}
}

func (s Styles) mapping(ev processor.Event) string {
	oldPath := filepath.Join(ev.Parent, ev.Name)
	newPath := filepath.Join(ev.Parent, ev.NewName)
	return s.Match.Render(oldPath) + s.Arrow.Render(" ~~> ") + s.Target.Render(newPath)
}

// AmbiguousHint explains how a rejected template will be parsed.
func (s Styles) AmbiguousHint(err *pattern.AmbiguousSyntaxError) string {
	fix := "${" + err.Reference[1:] + "}" + err.ReadAs[len(err.Reference):]
	return s.Warning.Render("Warning: ") + s.Label.Render(fmt.Sprintf("in replacement %q, capture reference ", err.Template)) +
		s.Match.Render(err.Reference) + s.Label.Render(" is being read as ") + s.Target.Render(err.ReadAs) + "\n" +
		s.Warning.Render("If this is not intended use ") + s.Match.Render(fix) + s.Warning.Render(" instead.")
}

// Printer writes report lines as they happen. It is the non-interactive
// processor.Reporter.
type Printer struct {
	w      io.Writer
	styles Styles
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: NewStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) Report(ev processor.Event) {
	if line, ok := p.styles.Line(ev); ok {
		fmt.Fprintln(p.w, line)
	}
}

// Hint writes guidance for errors the user can fix in their arguments.
// Other errors are left to the caller.
func (p *Printer) Hint(err error) {
	var ambErr *pattern.AmbiguousSyntaxError
	if errors.As(err, &ambErr) {
		fmt.Fprintln(p.w, p.styles.AmbiguousHint(ambErr))
	}
}

// Summary writes the end-of-run table.
func (p *Printer) Summary(summary processor.Summary) {
	fmt.Fprintln(p.w, p.styles.RenderSummary(SummaryRows(summary)))
}

// ChannelReporter forwards events to a live Model. Once done is closed the
// model is gone: events still buffered in Events and every later event go
// to Fallback, in order, so no report line is lost.
type ChannelReporter struct {
	Events   chan processor.Event
	Done     <-chan struct{}
	Fallback processor.Reporter
}

func (c ChannelReporter) Report(ev processor.Event) {
	select {
	case <-c.Done:
		c.fallback(ev)
		return
	default:
	}

	select {
	case c.Events <- ev:
	case <-c.Done:
		c.fallback(ev)
	}
}

func (c ChannelReporter) fallback(ev processor.Event) {
	c.Drain()
	if c.Fallback != nil {
		c.Fallback.Report(ev)
	}
}

// Drain hands events the model never read to Fallback. It must only be
// called once the model has stopped reading.
func (c ChannelReporter) Drain() {
	for {
		select {
		case ev, ok := <-c.Events:
			if !ok {
				return
			}
			if c.Fallback != nil {
				c.Fallback.Report(ev)
			}
		default:
			return
		}
	}
}
