// Package pattern compiles the user's search expression and expands
// replacement templates against matched names.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is matched by every error returned from Compile.
var ErrInvalidPattern = errors.New("compile pattern")

// Pattern is an immutable compiled search expression.
type Pattern struct {
	re *regexp.Regexp
}

// Compile parses expr. A failure here must abort the run before the
// filesystem is touched.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
	}
	return &Pattern{re: re}, nil
}

// Find reports whether any substring of name matches.
func (p *Pattern) Find(name string) bool {
	return p.re.MatchString(name)
}

// Substitute replaces the first match in name with template, expanding
// $N, ${N}, $name and ${name}. Groups that are unknown or did not
// participate expand to the empty string. A name without a match is
// returned unchanged.
func (p *Pattern) Substitute(name, template string) string {
	loc := p.re.FindStringSubmatchIndex(name)
	if loc == nil {
		return name
	}
	out := make([]byte, 0, len(name)+len(template))
	out = append(out, name[:loc[0]]...)
	out = p.re.ExpandString(out, template, name, loc)
	out = append(out, name[loc[1]:]...)
	return string(out)
}

func (p *Pattern) String() string {
	return p.re.String()
}
