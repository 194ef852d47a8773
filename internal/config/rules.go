// Package config loads application configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"blog-backend/internal/domain/entity"
	envconfig "blog-backend/pkg/config"

	"gopkg.in/yaml.v3"
)

// ValidationConfig mirrors configs/validation.yaml.
// Zero or missing values fall back to the entity defaults.
type ValidationConfig struct {
	Validation struct {
		Author struct {
			PhoneDigits int `yaml:"phone_digits"`
		} `yaml:"author"`
		Post struct {
			MinContentLength *int     `yaml:"min_content_length"`
			MaxSummaryLength int      `yaml:"max_summary_length"`
			Categories       []string `yaml:"categories"`
			TitlePhrases     []string `yaml:"title_phrases"`
		} `yaml:"post"`
	} `yaml:"validation"`
}

// Rules is the resolved rule set handed to the use-case services.
type Rules struct {
	Author entity.AuthorRules
	Post   entity.PostRules
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Author: entity.DefaultAuthorRules(),
		Post:   entity.DefaultPostRules(),
	}
}

// LoadValidationRules reads the YAML rule file at path and merges it over the defaults.
// The path parameter is expected to come from a trusted source (env var or hardcoded default).
func LoadValidationRules(path string) (Rules, error) {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ValidationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Rules{}, fmt.Errorf("failed to parse config: %w", err)
	}

	rules := cfg.merge(DefaultRules())
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("config validation failed: %w", err)
	}
	return rules, nil
}

// LoadRulesFromEnv resolves the rule set at start-up.
// VALIDATION_RULES_PATH points at the YAML file; a missing file is not an
// error and leaves the defaults in place. POST_MIN_CONTENT_LENGTH,
// POST_MAX_SUMMARY_LENGTH, POST_CATEGORIES and POST_TITLE_PHRASES override
// individual values after the file is applied.
func LoadRulesFromEnv() (Rules, error) {
	path := envconfig.GetEnvString("VALIDATION_RULES_PATH", "configs/validation.yaml")

	rules, err := LoadValidationRules(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("validation rules file not found, using defaults", slog.String("path", path))
		rules, err = DefaultRules(), nil
	}
	if err != nil {
		return Rules{}, err
	}

	rules.Author.PhoneDigits = envconfig.GetEnvInt("AUTHOR_PHONE_DIGITS", rules.Author.PhoneDigits)
	rules.Post.MinContentLength = envconfig.GetEnvInt("POST_MIN_CONTENT_LENGTH", rules.Post.MinContentLength)
	rules.Post.MaxSummaryLength = envconfig.GetEnvInt("POST_MAX_SUMMARY_LENGTH", rules.Post.MaxSummaryLength)
	rules.Post.Categories = envconfig.GetEnvStringList("POST_CATEGORIES", rules.Post.Categories)
	rules.Post.TitlePhrases = envconfig.GetEnvStringList("POST_TITLE_PHRASES", rules.Post.TitlePhrases)

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("config validation failed: %w", err)
	}
	return rules, nil
}

// Validate checks both rule sets.
func (r Rules) Validate() error {
	if err := r.Author.Validate(); err != nil {
		return fmt.Errorf("author: %w", err)
	}
	if err := r.Post.Validate(); err != nil {
		return fmt.Errorf("post: %w", err)
	}
	return nil
}

func (c *ValidationConfig) merge(base Rules) Rules {
	a, p := c.Validation.Author, c.Validation.Post
	if a.PhoneDigits != 0 {
		base.Author.PhoneDigits = a.PhoneDigits
	}
	// nil means the key was absent; 0 disables the minimum
	if p.MinContentLength != nil {
		base.Post.MinContentLength = *p.MinContentLength
	}
	if p.MaxSummaryLength != 0 {
		base.Post.MaxSummaryLength = p.MaxSummaryLength
	}
	if len(p.Categories) > 0 {
		base.Post.Categories = p.Categories
	}
	if len(p.TitlePhrases) > 0 {
		base.Post.TitlePhrases = p.TitlePhrases
	}
	return base
}
