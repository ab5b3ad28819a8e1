package loader

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"autoapply/internal/profile"
)

//go:embed resume_schema.json
var resumeSchema []byte

// Dates in the resume document are either full days or year-month.
const (
	dateLayoutDay   = "2006-01-02"
	dateLayoutMonth = "2006-01"
)

// LoadResume parses and validates the JSON resume document.
func (l *Loader) LoadResume(src io.Reader) (*profile.ResumeProfile, error) {
	data, err := l.readDocument(src, docResume)
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Well-formed JSON, wrong top-level shape.
			return nil, &ValidationError{
				Document:   docResume,
				Violations: []Violation{{Reason: "document must be a JSON object"}},
			}
		}
		return nil, &ParseError{Document: docResume, Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(resumeSchema),
		gojsonschema.NewGoLoader(tree),
	)
	if err != nil {
		return nil, &ParseError{Document: docResume, Err: err}
	}

	var violations []Violation
	for _, re := range result.Errors() {
		violations = append(violations, Violation{Path: schemaPath(re), Reason: re.Description()})
	}

	var rec profile.ResumeProfile
	if err := json.Unmarshal(data, &rec); err != nil {
		violations = append(violations, typeViolation(err))
		return nil, &ValidationError{Document: docResume, Violations: violations}
	}

	violations = append(violations, l.structViolations(&rec)...)
	violations = append(violations, l.resumeInvariants(&rec)...)
	if len(violations) > 0 {
		return nil, &ValidationError{Document: docResume, Violations: violations}
	}
	return &rec, nil
}

// resumeInvariants checks the date fields and position chronology. The
// chronology check is soft: out-of-order entries are logged, and only the
// strict_chronology policy turns them into violations.
func (l *Loader) resumeInvariants(r *profile.ResumeProfile) []Violation {
	var out []Violation

	starts := make([]time.Time, len(r.Experience))
	datesOK := true
	for i, pos := range r.Experience {
		path := fmt.Sprintf("experience[%d]", i)

		start, err := parseDocumentDate(pos.StartDate)
		if err != nil {
			out = append(out, Violation{Path: path + ".start_date", Reason: dateReason(pos.StartDate)})
			datesOK = false
		}
		starts[i] = start

		if pos.EndDate != "" {
			end, err := parseDocumentDate(pos.EndDate)
			if err != nil {
				out = append(out, Violation{Path: path + ".end_date", Reason: dateReason(pos.EndDate)})
			} else if !start.IsZero() && end.Before(start) {
				out = append(out, Violation{Path: path, Reason: "end_date precedes start_date"})
			}
			if pos.Current {
				out = append(out, Violation{Path: path, Reason: "position marked current but has an end_date"})
			}
		}
	}

	if datesOK {
		for i := 0; i+1 < len(starts); i++ {
			if !starts[i].Before(starts[i+1]) {
				continue
			}
			if l.policy.StrictChronology {
				out = append(out, Violation{
					Path:   "experience",
					Reason: fmt.Sprintf("entry %d starts before entry %d; positions must be listed most recent first", i, i+1),
				})
			} else {
				l.logger.Warn("experience entries out of chronological order",
					slog.Int("index", i),
					slog.String("start_date", r.Experience[i].StartDate),
				)
			}
		}
	}

	for i, d := range r.Education {
		if d.GraduationDate == "" {
			continue
		}
		if _, err := parseDocumentDate(d.GraduationDate); err != nil {
			out = append(out, Violation{
				Path:   fmt.Sprintf("education[%d].graduation_date", i),
				Reason: dateReason(d.GraduationDate),
			})
		}
	}

	for i, c := range r.Certifications {
		if c.Date == "" {
			continue
		}
		if _, err := parseDocumentDate(c.Date); err != nil {
			out = append(out, Violation{
				Path:   fmt.Sprintf("certifications[%d].date", i),
				Reason: dateReason(c.Date),
			})
		}
	}

	return out
}

func parseDocumentDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayoutDay, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayoutMonth, s)
}

func dateReason(value string) string {
	return fmt.Sprintf("malformed date %q, want YYYY-MM or YYYY-MM-DD", value)
}

// schemaPath rewrites gojsonschema's dot-index field paths
// (experience.0.company) into the bracket form the rest of the loader uses
// (experience[0].company).
func schemaPath(re gojsonschema.ResultError) string {
	field := re.Field()
	if field == "(root)" {
		return ""
	}
	var b strings.Builder
	for i, seg := range strings.Split(field, ".") {
		if isIndexSegment(seg) {
			b.WriteString("[" + seg + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isIndexSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func typeViolation(err error) Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Violation{
			Path:   typeErr.Field,
			Reason: fmt.Sprintf("cannot decode %s value as %s", typeErr.Value, typeErr.Type),
		}
	}
	return Violation{Reason: err.Error()}
}
