package entity

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is a blog post.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Summary   string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost validates the given fields and returns an unsaved Post.
func NewPost(title, content, summary, category string, rules PostRules) (*Post, error) {
	p := &Post{
		Title:    title,
		Content:  content,
		Summary:  summary,
		Category: category,
	}
	if err := ValidatePost(p, rules); err != nil {
		return nil, err
	}
	return p, nil
}

// ValidatePost checks content, summary, category and title in that order and
// returns the first failure. Lengths are counted in runes.
func ValidatePost(p *Post, rules PostRules) error {
	if p == nil {
		return ErrInvalidInput
	}

	contentRules := []validation.Rule{validation.Required}
	if rules.MinContentLength > 0 {
		// RuneLength(0, 0) means "must be empty" in ozzo
		contentRules = append(contentRules, validation.RuneLength(rules.MinContentLength, 0))
	}
	if err := check("content", "content too short", p.Content, contentRules...); err != nil {
		return err
	}

	// 空の要約は許可する
	if err := check("summary", "summary too long", p.Summary,
		validation.RuneLength(0, rules.MaxSummaryLength),
	); err != nil {
		return err
	}

	if err := check("category", "invalid category", p.Category,
		validation.Required,
		validation.In(rules.categoryValues()...),
	); err != nil {
		return err
	}

	return check("title", "missing required phrase", p.Title,
		validation.Required,
		validation.By(containsAny(rules.TitlePhrases)),
	)
}
