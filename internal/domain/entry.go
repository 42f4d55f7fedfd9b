// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits enforced at the API boundary.
const (
	// MaxTitleLength is the maximum number of characters in an entry title.
	MaxTitleLength = 200

	// MaxContentLength is the maximum number of characters in an entry body.
	MaxContentLength = 5000

	// MaxTagNameLength is the maximum number of characters in a normalized
	// tag name.
	MaxTagNameLength = 255
)

// Entry is a single journal record together with its resolved tags.
// CreatedAt never changes after creation; UpdatedAt is refreshed on every update.
type Entry struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []Tag
}

// TagNames returns the names of the entry's tags in their stored order.
func (e *Entry) TagNames() []string {
	names := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		names = append(names, t.Name)
	}

	return names
}

// HasTag reports whether the entry is associated with the tag id.
func (e *Entry) HasTag(tagID int64) bool {
	for _, t := range e.Tags {
		if t.ID == tagID {
			return true
		}
	}

	return false
}

// Tag is a label shared between entries. Name is stored normalized
// (trimmed, lowercased) and is unique across the journal.
type Tag struct {
	ID   int64
	Name string
}

// NewEntry carries the fields required to create an entry.
type NewEntry struct {
	Title   string
	Content string
}

// Validate checks the title and content against the field limits.
func (n NewEntry) Validate() error {
	if err := validateText("title", n.Title, MaxTitleLength); err != nil {
		return err
	}

	return validateText("content", n.Content, MaxContentLength)
}

// EntryDraft is an entry to create together with its raw tag names.
type EntryDraft struct {
	NewEntry
	Tags []string
}

// EntryPatch is a partial update. Nil fields are left unchanged.
type EntryPatch struct {
	Title   *string
	Content *string
}

// Validate checks the fields that are present.
func (p EntryPatch) Validate() error {
	if p.Title != nil {
		if err := validateText("title", *p.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	if p.Content != nil {
		return validateText("content", *p.Content, MaxContentLength)
	}

	return nil
}

func validateText(field, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}

	if utf8.RuneCountInString(value) > limit {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", limit))
	}

	return nil
}

// NormalizeTagName trims surrounding whitespace and lowercases the name.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeTagNames normalizes every name, drops empty results and
// collapses duplicates. First-occurrence order is preserved.
func NormalizeTagNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, raw := range names {
		name := NormalizeTagName(raw)
		if name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// ValidateTagNames checks every raw name against MaxTagNameLength once
// normalized. The reported field is the index into names.
func ValidateTagNames(names []string) error {
	for i, raw := range names {
		if utf8.RuneCountInString(NormalizeTagName(raw)) > MaxTagNameLength {
			return NewValidationError(
				fmt.Sprintf("tags[%d]", i),
				fmt.Sprintf("must be at most %d characters", MaxTagNameLength),
			)
		}
	}

	return nil
}

// TagCount pairs a tag with the number of entries that use it.
type TagCount struct {
	Tag   Tag
	Count int
}

// TagGroup is a tag with the entries that carry it, newest first.
type TagGroup struct {
	Tag     Tag
	Entries []*Entry
}
