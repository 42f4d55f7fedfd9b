// Package ports defines the contracts the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
//
// Every method takes a context first and returns domain types and domain
// errors (domain.ErrNotFound, domain.ErrValidation, ...), never storage or
// transport types.
package ports

import (
	"context"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// EntryRepository persists journal entries and their tag associations.
//
// Each mutating call runs in a single transaction. Either the entry row and
// all of its associations change, or nothing does.
type EntryRepository interface {
	// List returns every entry with tags, newest first.
	List(ctx context.Context) ([]*domain.Entry, error)

	// Get returns one entry with its tags.
	// Returns domain.ErrNotFound if the id does not exist.
	Get(ctx context.Context, id int64) (*domain.Entry, error)

	// Create stores a new entry and associates it with tagNames, creating
	// missing tags on the way. Names are expected to be normalized.
	Create(ctx context.Context, entry domain.NewEntry, tagNames []string) (*domain.Entry, error)

	// CreateAll creates every draft in a single transaction and returns
	// the entries in draft order.
	CreateAll(ctx context.Context, drafts []domain.EntryDraft) ([]*domain.Entry, error)

	// Update applies patch, bumps UpdatedAt and replaces the entry's tag
	// set with tagNames. A nil tagNames keeps the current set; an empty
	// non-nil one clears every association.
	// Returns domain.ErrNotFound if the id does not exist.
	Update(ctx context.Context, id int64, patch domain.EntryPatch, tagNames []string) (*domain.Entry, error)

	// Delete removes the entry and its associations. Deleting an unknown id
	// is not an error. Tags are never deleted.
	Delete(ctx context.Context, id int64) error

	// Search returns entries whose title, content or any tag name contains
	// query, case-insensitively, newest first and without duplicates.
	Search(ctx context.Context, query string) ([]*domain.Entry, error)
}

// TagRepository reads and creates tags.
type TagRepository interface {
	// List returns every tag ordered by name.
	List(ctx context.Context) ([]domain.Tag, error)

	// GetOrCreate resolves each normalized name to a tag, inserting the
	// ones that do not exist yet. Existing tags come first, then newly
	// created ones, each group in input order.
	GetOrCreate(ctx context.Context, names []string) ([]domain.Tag, error)

	// CountUsage returns every tag used by at least one entry together with
	// its entry count, most used first.
	CountUsage(ctx context.Context) ([]domain.TagCount, error)
}

// EntrySource is the read side needed by statistics and export. Both the
// local repository and the remote journal client satisfy it.
type EntrySource interface {
	ListEntries(ctx context.Context) ([]*domain.Entry, error)
}

// JournalMetrics records business-level counters.
type JournalMetrics interface {
	// EntryChanged counts a successful create, update, delete or import.
	EntryChanged(operation string)

	// TagsCreated counts tags inserted by GetOrCreate.
	TagsCreated(n int)
}
