// Package loader ingests the two user-profile documents — the YAML
// preferences file and the JSON resume — validates them, and produces the
// typed records in internal/profile. Validation is all-or-nothing: either
// both records come back fully populated or an error carries every
// violation found.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"autoapply/internal/config"
	"autoapply/internal/profile"
)

const (
	docPreferences = "preferences"
	docResume      = "resume"
)

// Loader reads and validates profile documents. It holds no state between
// calls and is safe for concurrent use on independent inputs.
type Loader struct {
	policy   config.Policy
	logger   *slog.Logger
	validate *validator.Validate
}

// New builds a Loader with the given policy. Zero-valued size and default
// fields fall back to config.Default(). A nil logger uses slog.Default.
func New(policy config.Policy, logger *slog.Logger) *Loader {
	d := config.Default()
	if policy.MaxDocumentBytes <= 0 {
		policy.MaxDocumentBytes = d.MaxDocumentBytes
	}
	if policy.DefaultPersonalizationLevel == "" {
		policy.DefaultPersonalizationLevel = d.DefaultPersonalizationLevel
	}
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	v.RegisterTagNameFunc(documentFieldName)

	return &Loader{policy: policy, logger: logger, validate: v}
}

// Load reads both documents and returns the validated records. A malformed
// document fails immediately with *ParseError; schema or invariant
// violations from both documents are merged into a single *ValidationError.
// No partial result is ever returned.
func (l *Loader) Load(prefsSrc, resumeSrc io.Reader) (*profile.UserPreferences, *profile.ResumeProfile, error) {
	prefs, prefsErr := l.LoadPreferences(prefsSrc)
	var parseErr *ParseError
	if errors.As(prefsErr, &parseErr) {
		return nil, nil, prefsErr
	}

	rec, resumeErr := l.LoadResume(resumeSrc)
	if errors.As(resumeErr, &parseErr) {
		return nil, nil, resumeErr
	}

	if prefsErr == nil && resumeErr == nil {
		return prefs, rec, nil
	}

	merged := &ValidationError{}
	var docs []string
	for _, err := range []error{prefsErr, resumeErr} {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return nil, nil, err
		}
		docs = append(docs, verr.Document)
		merged.Violations = append(merged.Violations, verr.Violations...)
	}
	merged.Document = strings.Join(docs, ", ")
	return nil, nil, merged
}

// readDocument slurps one source, enforcing the policy size cap before any
// parsing happens.
func (l *Loader) readDocument(src io.Reader, doc string) ([]byte, error) {
	max := l.policy.MaxDocumentBytes
	data, err := io.ReadAll(io.LimitReader(src, max+1))
	if err != nil {
		return nil, &ParseError{Document: doc, Err: fmt.Errorf("read source: %w", err)}
	}
	if int64(len(data)) > max {
		return nil, &ParseError{Document: doc, Err: fmt.Errorf("document exceeds %d bytes", max)}
	}
	return data, nil
}

// structViolations runs tag-based field validation and translates the
// results into document-path violations.
func (l *Loader) structViolations(rec any) []Violation {
	err := l.validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Reason: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Path: documentPath(fe.Namespace()), Reason: reasonFor(fe)})
	}
	return out
}

// documentFieldName resolves a struct field to the key it carries in the
// source document, preferring the preferences (mapstructure) tag and
// falling back to the resume (json) tag.
func documentFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// documentPath strips the Go root-struct segment from a validator
// namespace, leaving the document field path.
func documentPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a well-formed email address"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "iso4217":
		return "must be an ISO 4217 currency code"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
