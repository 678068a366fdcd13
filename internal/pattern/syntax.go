package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrAmbiguousSyntax is matched by every error returned from CheckTemplate.
var ErrAmbiguousSyntax = errors.New("ambiguous replacement syntax")

// A bare numeric reference directly followed by text that would be read
// as part of the group name. \s is ASCII-only in RE2, so vertical tab, NEL
// and the Unicode separators are listed explicitly.
var ambiguousRef = regexp.MustCompile(`(\$\d+)([^\d$\s\v\x{85}\p{Z}]+)`)

// AmbiguousSyntaxError describes the first offending reference in a template.
type AmbiguousSyntaxError struct {
	Template  string
	Reference string
	ReadAs    string
}

func (e *AmbiguousSyntaxError) Error() string {
	return fmt.Sprintf("%s: capture reference %s is read as %s; use ${%s}%s instead",
		ErrAmbiguousSyntax, e.Reference, e.ReadAs, e.Reference[1:], e.ReadAs[len(e.Reference):])
}

func (e *AmbiguousSyntaxError) Is(target error) bool {
	return target == ErrAmbiguousSyntax
}

// CheckTemplate scans template for a bare `$<digits>` immediately followed
// by a character that is not a digit, `$` or whitespace. Such a reference
// is parsed as one longer group name ($1abc is ${1abc}, not ${1}abc). The
// scan is textual and does not depend on any compiled pattern.
func CheckTemplate(template string) error {
	m := ambiguousRef.FindStringSubmatch(template)
	if m == nil {
		return nil
	}
	return &AmbiguousSyntaxError{
		Template:  template,
		Reference: m[1],
		ReadAs:    m[0],
	}
}
