// Package profile defines the typed records produced by the loader.
//
// Records are built once at load time and are read-only afterwards;
// downstream consumers must not mutate them. Helpers that derive views
// from slice fields return copies.
package profile

// UserPreferences mirrors the user-preferences document (profile.yaml).
type UserPreferences struct {
	UserID               string            `mapstructure:"user_id" validate:"required"`
	NotificationsEnabled bool              `mapstructure:"notifications_enabled"`
	ApplicationLimits    ApplicationLimits `mapstructure:"application_limits"`
	JobSearch            JobSearch         `mapstructure:"job_search"`
	Customization        Customization     `mapstructure:"customization"`
	AutoResponse         AutoResponse      `mapstructure:"auto_response"`
}

// ApplicationLimits caps how many applications may be submitted per period.
// The loader additionally enforces daily ≤ weekly ≤ monthly.
type ApplicationLimits struct {
	DailyMax   int `mapstructure:"daily_max" validate:"gt=0"`
	WeeklyMax  int `mapstructure:"weekly_max" validate:"gt=0"`
	MonthlyMax int `mapstructure:"monthly_max" validate:"gt=0"`
}

// JobSearch holds the search criteria used to select postings.
type JobSearch struct {
	JobTitles         []string          `mapstructure:"job_titles" validate:"min=1"`
	Locations         []string          `mapstructure:"locations"`
	RemotePreferences RemotePreferences `mapstructure:"remote_preferences"`
	ExperienceLevel   ExperienceLevel   `mapstructure:"experience_level"`
	SalaryRange       SalaryRange       `mapstructure:"salary_range"`
	CompanySizes      []string          `mapstructure:"company_sizes"`
	Industries        []string          `mapstructure:"industries"`
	ExcludedCompanies []string          `mapstructure:"excluded_companies"`
}

// RemotePreferences flags the acceptable work modes. At least one flag must
// be true for the document to validate.
type RemotePreferences struct {
	FullyRemote bool `mapstructure:"fully_remote"`
	Hybrid      bool `mapstructure:"hybrid"`
	Onsite      bool `mapstructure:"onsite"`
}

// ExperienceLevel bounds the years of experience a posting should ask for.
type ExperienceLevel struct {
	MinYears int `mapstructure:"min_years" validate:"gte=0"`
	MaxYears int `mapstructure:"max_years" validate:"gte=0"`
}

// SalaryRange is the acceptable compensation band in Currency units.
type SalaryRange struct {
	Min      int    `mapstructure:"min"`
	Max      int    `mapstructure:"max"`
	Currency string `mapstructure:"currency" validate:"required,iso4217"`
}

// Customization controls how individual applications are personalized.
type Customization struct {
	CoverLetterTemplate  string               `mapstructure:"cover_letter_template"`
	CustomAnswers        []CustomAnswer       `mapstructure:"custom_answers" validate:"dive"`
	SkillHighlights      []string             `mapstructure:"skill_highlights"`
	PersonalizationLevel PersonalizationLevel `mapstructure:"personalization_level" validate:"omitempty,oneof=low medium high"`
}

// CustomAnswer is a canned response to a recurring screening question.
type CustomAnswer struct {
	QuestionID string `mapstructure:"question_id" validate:"required"`
	Response   string `mapstructure:"response"`
}

// AutoResponse configures follow-up behavior after an application is sent.
type AutoResponse struct {
	Enabled              bool `mapstructure:"enabled"`
	ResponseDelayHours   int  `mapstructure:"response_delay_hours" validate:"gte=0"`
	FollowUpIntervalDays int  `mapstructure:"follow_up_interval_days" validate:"gte=0"`
	MaxFollowUps         int  `mapstructure:"max_follow_ups" validate:"gte=0"`
}

// PersonalizationLevel is how aggressively applications are tailored.
type PersonalizationLevel string

const (
	PersonalizationLow    PersonalizationLevel = "low"
	PersonalizationMedium PersonalizationLevel = "medium"
	PersonalizationHigh   PersonalizationLevel = "high"
)

// Valid reports whether the level is one of the known values.
func (p PersonalizationLevel) Valid() bool {
	switch p {
	case PersonalizationLow, PersonalizationMedium, PersonalizationHigh:
		return true
	}
	return false
}

// WantsRemote reports whether remote listings should be included at all,
// either fully remote or hybrid.
func (r RemotePreferences) WantsRemote() bool {
	return r.FullyRemote || r.Hybrid
}

// AnySelected reports whether at least one work mode is acceptable.
func (r RemotePreferences) AnySelected() bool {
	return r.FullyRemote || r.Hybrid || r.Onsite
}

// IsExcluded reports whether the given company appears in the excluded set.
func (j JobSearch) IsExcluded(company string) bool {
	for _, c := range j.ExcludedCompanies {
		if c == company {
			return true
		}
	}
	return false
}

// Answer returns the canned response for a question ID, if one is defined.
func (c Customization) Answer(questionID string) (string, bool) {
	for _, a := range c.CustomAnswers {
		if a.QuestionID == questionID {
			return a.Response, true
		}
	}
	return "", false
}
