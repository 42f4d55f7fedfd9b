// Package app contains the application services. They orchestrate the
// journal use cases through ports and never touch storage or transport
// types directly.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen/learning-journal/internal/domain"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

// Operation labels passed to ports.JournalMetrics.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpImport = "import"
)

// JournalService implements the entry, tag, export and import use cases.
type JournalService struct {
	entries ports.EntryRepository
	tags    ports.TagRepository
	metrics ports.JournalMetrics
	now     func() time.Time
	logger  *slog.Logger
}

// JournalServiceConfig contains the dependencies of a JournalService.
// Entries and Tags are required; the rest have defaults.
type JournalServiceConfig struct {
	Entries ports.EntryRepository
	Tags    ports.TagRepository
	Metrics ports.JournalMetrics
	Clock   func() time.Time
	Logger  *slog.Logger
}

// NewJournalService panics if a required repository is missing.
func NewJournalService(cfg JournalServiceConfig) *JournalService {
	if cfg.Entries == nil {
		panic("app: JournalServiceConfig.Entries is required")
	}

	if cfg.Tags == nil {
		panic("app: JournalServiceConfig.Tags is required")
	}

	s := &JournalService{
		entries: cfg.Entries,
		tags:    cfg.Tags,
		metrics: cfg.Metrics,
		now:     cfg.Clock,
		logger:  cfg.Logger,
	}

	if s.metrics == nil {
		s.metrics = nopMetrics{}
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.logger = s.logger.With(slog.String("component", "app.JournalService"))

	return s
}

// ListEntries returns every entry, newest first.
func (s *JournalService) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return entries, nil
}

// GetEntry returns one entry or a NotFoundError.
func (s *JournalService) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return entry, nil
}

// CreateEntry validates and stores a new entry with the given raw tag names.
func (s *JournalService) CreateEntry(ctx context.Context, entry domain.NewEntry, tags []string) (*domain.Entry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := domain.ValidateTagNames(tags); err != nil {
		return nil, err
	}

	created, err := s.entries.Create(ctx, entry, domain.NormalizeTagNames(tags))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create entry", slog.Any("error", err))
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	s.metrics.EntryChanged(OpCreate)
	s.logger.InfoContext(ctx, "entry created",
		slog.Int64("entry_id", created.ID),
		slog.Int("tags", len(created.Tags)),
	)

	return created, nil
}

// UpdateEntry applies patch to the entry. A nil tags keeps the current tag
// set; a non-nil empty slice clears it. The store reads and keeps the
// current set in the same transaction as the update.
func (s *JournalService) UpdateEntry(
	ctx context.Context,
	id int64,
	patch domain.EntryPatch,
	tags []string,
) (*domain.Entry, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if err := domain.ValidateTagNames(tags); err != nil {
		return nil, err
	}

	var names []string

	if tags != nil {
		names = domain.NormalizeTagNames(tags)
		if names == nil {
			names = []string{}
		}
	}

	updated, err := s.entries.Update(ctx, id, patch, names)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "failed to update entry",
				slog.Int64("entry_id", id),
				slog.Any("error", err),
			)
		}

		return nil, fmt.Errorf("updating entry: %w", err)
	}

	s.metrics.EntryChanged(OpUpdate)
	s.logger.InfoContext(ctx, "entry updated", slog.Int64("entry_id", id))

	return updated, nil
}

// DeleteEntry removes the entry. Unknown ids succeed.
func (s *JournalService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete entry",
			slog.Int64("entry_id", id),
			slog.Any("error", err),
		)

		return fmt.Errorf("deleting entry: %w", err)
	}

	s.metrics.EntryChanged(OpDelete)
	s.logger.InfoContext(ctx, "entry deleted", slog.Int64("entry_id", id))

	return nil
}

// SearchEntries returns entries matching query in title, content or tags.
// A blank query is a validation error.
func (s *JournalService) SearchEntries(ctx context.Context, query string) ([]*domain.Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.NewValidationError("q", "search query is required")
	}

	entries, err := s.entries.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}

	return entries, nil
}

// ListTags returns every tag ordered by name.
func (s *JournalService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return tags, nil
}

// TagSummary returns the tags in use with their entry counts.
func (s *JournalService) TagSummary(ctx context.Context) ([]domain.TagCount, error) {
	counts, err := s.tags.CountUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting tag usage: %w", err)
	}

	return counts, nil
}

// EntriesTagged returns the entries carrying the named tag, newest first.
// An unknown tag is a NotFoundError; a known tag without entries yields an
// empty group.
func (s *JournalService) EntriesTagged(ctx context.Context, name string) (*domain.TagGroup, error) {
	name = domain.NormalizeTagName(name)
	if name == "" {
		return nil, domain.NewValidationError("tag", "is required")
	}

	c, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tag group: %w", err)
	}

	tag, ok := c.tag(name)
	if !ok {
		return nil, domain.NewNotFoundError("tag", name)
	}

	group := &domain.TagGroup{Tag: tag, Entries: []*domain.Entry{}}

	for _, e := range c.entries {
		if e.HasTag(tag.ID) {
			group.Entries = append(group.Entries, e)
		}
	}

	return group, nil
}

// Export snapshots the whole journal.
func (s *JournalService) Export(ctx context.Context) (*domain.Export, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting entries: %w", err)
	}

	exp := domain.NewExport(entries, s.now())
	s.logger.InfoContext(ctx, "journal exported", slog.Int("entries", exp.TotalEntries))

	return exp, nil
}

// Import recreates every entry of an export document in one transaction
// and returns how many were created. Ids and timestamps are not carried
// over. Nothing is written if any entry is invalid.
func (s *JournalService) Import(ctx context.Context, doc *domain.Export) (int, error) {
	n, err := Run(ctx, s.logger, Pipeline[*domain.Export, []*domain.Entry, int]{
		Name:     "import",
		Validate: validateImport,
		Perform: func(ctx context.Context, doc *domain.Export) ([]*domain.Entry, error) {
			return s.entries.CreateAll(ctx, importDrafts(doc))
		},
		Verify: func(_ context.Context, doc *domain.Export, created []*domain.Entry) (int, error) {
			if len(created) != len(doc.Entries) {
				return 0, fmt.Errorf("created %d of %d entries", len(created), len(doc.Entries))
			}

			return len(created), nil
		},
	}, doc)
	if err != nil {
		return 0, fmt.Errorf("importing entries: %w", err)
	}

	for range n {
		s.metrics.EntryChanged(OpImport)
	}

	return n, nil
}

func validateImport(_ context.Context, doc *domain.Export) error {
	if doc == nil {
		return domain.NewValidationError("entries", "is required")
	}

	for i, e := range doc.Entries {
		err := domain.NewEntry{Title: e.Title, Content: e.Content}.Validate()

		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return domain.NewValidationError(fmt.Sprintf("entries[%d].%s", i, vErr.Field), vErr.Message)
		}

		if err != nil {
			return err
		}

		if err := domain.ValidateTagNames(e.Tags); errors.As(err, &vErr) {
			return domain.NewValidationError(fmt.Sprintf("entries[%d].%s", i, vErr.Field), vErr.Message)
		}
	}

	return nil
}

func importDrafts(doc *domain.Export) []domain.EntryDraft {
	drafts := make([]domain.EntryDraft, 0, len(doc.Entries))

	// Exports list newest first; create oldest first so relative order survives.
	for i := len(doc.Entries) - 1; i >= 0; i-- {
		e := doc.Entries[i]
		drafts = append(drafts, domain.EntryDraft{
			NewEntry: domain.NewEntry{Title: e.Title, Content: e.Content},
			Tags:     domain.NormalizeTagNames(e.Tags),
		})
	}

	return drafts
}

type nopMetrics struct{}

func (nopMetrics) EntryChanged(string) {}
func (nopMetrics) TagsCreated(int)     {}
