package loader

import (
	"fmt"
	"strings"
)

// Violation is a single validation finding: where in the document it was
// found and why it is wrong.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Reason
	}
	return v.Path + ": " + v.Reason
}

// ParseError reports that a source document is not well-formed. It is
// surfaced immediately; no validation is attempted on a document that does
// not parse.
type ParseError struct {
	Document string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s document: %v", e.Document, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports that a document parsed but violates the schema or
// a cross-field invariant. It carries every violation found, not just the
// first, so a hand-edited document can be fixed in one pass.
type ValidationError struct {
	Document   string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s document invalid (%d violations): %s",
		e.Document, len(e.Violations), strings.Join(parts, "; "))
}

// HasPath reports whether any violation sits at or under the given document
// path prefix.
func (e *ValidationError) HasPath(prefix string) bool {
	for _, v := range e.Violations {
		if v.Path == prefix || strings.HasPrefix(v.Path, prefix+".") || strings.HasPrefix(v.Path, prefix+"[") {
			return true
		}
	}
	return false
}
