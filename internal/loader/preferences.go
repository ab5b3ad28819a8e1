package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"autoapply/internal/profile"
)

// Application-limit defaults applied when the document omits the section.
// The original platform assumed 15 applications per day; the weekly and
// monthly caps scale it the same way the sample document does.
const (
	defaultDailyMax   = 15
	defaultWeeklyMax  = 50
	defaultMonthlyMax = 150
)

// LoadPreferences parses and validates the YAML preferences document.
func (l *Loader) LoadPreferences(src io.Reader) (*profile.UserPreferences, error) {
	data, err := l.readDocument(src, docPreferences)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	l.setDocumentDefaults(v)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, &ParseError{Document: docPreferences, Err: err}
	}

	var prefs profile.UserPreferences
	if err := v.Unmarshal(&prefs); err != nil {
		return nil, &ValidationError{Document: docPreferences, Violations: decodeViolations(err)}
	}

	violations := l.structViolations(&prefs)
	violations = append(violations, l.preferenceInvariants(&prefs)...)
	if len(violations) > 0 {
		return nil, &ValidationError{Document: docPreferences, Violations: violations}
	}
	return &prefs, nil
}

// setDocumentDefaults installs the documented defaults for optional fields.
// These are loader policy, not something the document format requires.
func (l *Loader) setDocumentDefaults(v *viper.Viper) {
	v.SetDefault("customization.personalization_level", l.policy.DefaultPersonalizationLevel)
	v.SetDefault("application_limits.daily_max", defaultDailyMax)
	v.SetDefault("application_limits.weekly_max", defaultWeeklyMax)
	v.SetDefault("application_limits.monthly_max", defaultMonthlyMax)
}

// preferenceInvariants applies the cross-field rules that tag validation
// cannot express. All findings are collected.
func (l *Loader) preferenceInvariants(p *profile.UserPreferences) []Violation {
	var out []Violation

	lim := p.ApplicationLimits
	if lim.DailyMax > lim.WeeklyMax {
		out = append(out, Violation{
			Path:   "application_limits.daily_max",
			Reason: fmt.Sprintf("daily_max (%d) exceeds weekly_max (%d)", lim.DailyMax, lim.WeeklyMax),
		})
	}
	if lim.WeeklyMax > lim.MonthlyMax {
		out = append(out, Violation{
			Path:   "application_limits.weekly_max",
			Reason: fmt.Sprintf("weekly_max (%d) exceeds monthly_max (%d)", lim.WeeklyMax, lim.MonthlyMax),
		})
	}

	exp := p.JobSearch.ExperienceLevel
	if exp.MinYears > exp.MaxYears {
		out = append(out, Violation{
			Path:   "job_search.experience_level",
			Reason: fmt.Sprintf("min_years (%d) exceeds max_years (%d)", exp.MinYears, exp.MaxYears),
		})
	}

	sal := p.JobSearch.SalaryRange
	if sal.Min > sal.Max {
		out = append(out, Violation{
			Path:   "job_search.salary_range",
			Reason: fmt.Sprintf("min (%d) exceeds max (%d)", sal.Min, sal.Max),
		})
	}

	if !p.JobSearch.RemotePreferences.AnySelected() {
		out = append(out, Violation{
			Path:   "job_search.remote_preferences",
			Reason: "at least one of fully_remote, hybrid, onsite must be true",
		})
	}

	if l.policy.RequireUniqueAnswers {
		seen := make(map[string]bool, len(p.Customization.CustomAnswers))
		for i, a := range p.Customization.CustomAnswers {
			if seen[a.QuestionID] {
				out = append(out, Violation{
					Path:   fmt.Sprintf("customization.custom_answers[%d].question_id", i),
					Reason: fmt.Sprintf("duplicate question_id %q", a.QuestionID),
				})
			}
			seen[a.QuestionID] = true
		}
	}

	return out
}

// decodeViolations turns a mapstructure decode failure (wrong-shape fields)
// into per-field violations. The decoder joins one error per failed field.
func decodeViolations(err error) []Violation {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []Violation{decodeViolation(err)}
	}
	errs := joined.Unwrap()
	out := make([]Violation, 0, len(errs))
	for _, e := range errs {
		out = append(out, decodeViolation(e))
	}
	return out
}

// decodeViolation maps one decode error to a violation, taking the field
// path from the DecodeError when available and otherwise from the quoted
// path mapstructure embeds in messages like:
// 'application_limits.daily_max' cannot parse value as 'int'.
func decodeViolation(err error) Violation {
	var decodeErr *mapstructure.DecodeError
	if errors.As(err, &decodeErr) {
		return Violation{Path: decodeErr.Name(), Reason: err.Error()}
	}
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, "'"); ok {
		if path, _, ok := strings.Cut(rest, "'"); ok && path != "" {
			return Violation{Path: path, Reason: msg}
		}
	}
	return Violation{Reason: msg}
}
