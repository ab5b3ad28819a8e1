package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"autoapply/internal/profile"
)

// Policy aggregates loader behavior that is deliberate design choice rather
// than something the documents themselves mandate. Everything here may be
// overridden through environment variables.
type Policy struct {
	// DefaultPersonalizationLevel is applied when the preferences document
	// omits customization.personalization_level.
	DefaultPersonalizationLevel string `mapstructure:"default_personalization_level"`

	// StrictChronology promotes the soft experience-ordering check to a
	// hard validation failure.
	StrictChronology bool `mapstructure:"strict_chronology"`

	// RequireUniqueAnswers enforces that custom_answers carry unique
	// question IDs.
	RequireUniqueAnswers bool `mapstructure:"require_unique_answers"`

	// MaxDocumentBytes bounds the size of a single source document.
	MaxDocumentBytes int64 `mapstructure:"max_document_bytes"`
}

// Default returns the policy used when no environment overrides apply.
func Default() Policy {
	return Policy{
		DefaultPersonalizationLevel: string(profile.PersonalizationMedium),
		RequireUniqueAnswers:        true,
		MaxDocumentBytes:            1 << 20,
	}
}

// Load reads the policy solely from environment variables (with defaults).
func Load() (*Policy, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var p Policy
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("unmarshal policy: %w", err)
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	return &p, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Policy {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("default_personalization_level", d.DefaultPersonalizationLevel)
	v.SetDefault("strict_chronology", d.StrictChronology)
	v.SetDefault("require_unique_answers", d.RequireUniqueAnswers)
	v.SetDefault("max_document_bytes", d.MaxDocumentBytes)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"default_personalization_level": "DEFAULT_PERSONALIZATION_LEVEL",
		"strict_chronology":             "STRICT_CHRONOLOGY",
		"require_unique_answers":        "REQUIRE_UNIQUE_ANSWERS",
		"max_document_bytes":            "MAX_DOCUMENT_BYTES",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(p Policy) error {
	if !profile.PersonalizationLevel(p.DefaultPersonalizationLevel).Valid() {
		return fmt.Errorf("unknown default personalization level %q", p.DefaultPersonalizationLevel)
	}
	if p.MaxDocumentBytes <= 0 {
		return errors.New("max document bytes must be positive")
	}
	return nil
}
