package entity

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is a blog author. Name is unique across all authors; the store
// enforces it and the author use case checks it ahead of writes.
type Author struct {
	ID          int64
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor validates the given fields and returns an unsaved Author.
func NewAuthor(name, phoneNumber string, rules AuthorRules) (*Author, error) {
	a := &Author{
		Name:        strings.TrimSpace(name),
		PhoneNumber: phoneNumber,
	}
	if err := ValidateAuthor(a, rules); err != nil {
		return nil, err
	}
	return a, nil
}

// ValidateAuthor checks the field rules that need no store access.
// The phone number is checked before the name; the first failure is returned.
func ValidateAuthor(a *Author, rules AuthorRules) error {
	if a == nil {
		return ErrInvalidInput
	}

	phoneMsg := rules.phoneMessage()
	if err := check("phone_number", phoneMsg, a.PhoneNumber,
		validation.Required,
		validation.Match(rules.phonePattern()),
	); err != nil {
		return err
	}

	return check("name", "name is required", strings.TrimSpace(a.Name), validation.Required)
}
