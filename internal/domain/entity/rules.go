package entity

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Default rule values.
const (
	DefaultPhoneDigits      = 10
	DefaultMinContentLength = 250
	DefaultMaxSummaryLength = 250
)

// DefaultCategories are the post categories accepted out of the box.
var DefaultCategories = []string{"Fiction", "Non-Fiction"}

// DefaultTitlePhrases are the marker phrases a post title must contain one of.
var DefaultTitlePhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

// AuthorRules holds the tunable author constraints.
type AuthorRules struct {
	PhoneDigits int
}

// DefaultAuthorRules returns the stock author rules.
func DefaultAuthorRules() AuthorRules {
	return AuthorRules{PhoneDigits: DefaultPhoneDigits}
}

// Validate checks that the rule set itself is usable.
func (r AuthorRules) Validate() error {
	if r.PhoneDigits <= 0 {
		return fmt.Errorf("phone_digits must be positive, got %d", r.PhoneDigits)
	}
	return nil
}

func (r AuthorRules) phonePattern() *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, r.PhoneDigits))
}

func (r AuthorRules) phoneMessage() string {
	return fmt.Sprintf("phone number must be exactly %d digits", r.PhoneDigits)
}

// PostRules holds the tunable post constraints.
type PostRules struct {
	MinContentLength int
	MaxSummaryLength int
	Categories       []string
	TitlePhrases     []string
}

// DefaultPostRules returns the stock post rules.
func DefaultPostRules() PostRules {
	return PostRules{
		MinContentLength: DefaultMinContentLength,
		MaxSummaryLength: DefaultMaxSummaryLength,
		Categories:       slices.Clone(DefaultCategories),
		TitlePhrases:     slices.Clone(DefaultTitlePhrases),
	}
}

// Validate checks that the rule set itself is usable.
func (r PostRules) Validate() error {
	if r.MinContentLength < 0 {
		return fmt.Errorf("min_content_length must not be negative, got %d", r.MinContentLength)
	}
	if r.MaxSummaryLength <= 0 {
		return fmt.Errorf("max_summary_length must be positive, got %d", r.MaxSummaryLength)
	}
	if len(r.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	if len(r.TitlePhrases) == 0 {
		return fmt.Errorf("at least one title phrase is required")
	}
	for _, p := range r.TitlePhrases {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("title phrases must not be blank")
		}
	}
	return nil
}

func (r PostRules) categoryValues() []any {
	out := make([]any, len(r.Categories))
	for i, c := range r.Categories {
		out[i] = c
	}
	return out
}

// containsAny builds an ozzo rule that passes when the string value contains
// at least one of phrases.
func containsAny(phrases []string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		for _, p := range phrases {
			if strings.Contains(s, p) {
				return nil
			}
		}
		return fmt.Errorf("must contain one of %q", phrases)
	}
}

// check runs rules against value and reports any failure as a
// ValidationError carrying message. ozzo rules skip empty values unless
// Required is present, so callers list Required first where emptiness fails.
func check(field, message string, value any, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}
