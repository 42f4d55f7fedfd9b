package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// catalog is every tag and every entry, read side by side.
type catalog struct {
	tags    []domain.Tag
	entries []*domain.Entry
}

// loadCatalog reads tags and entries concurrently. Either read failing
// cancels the other.
func (s *JournalService) loadCatalog(ctx context.Context) (*catalog, error) {
	var c catalog

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		c.tags, err = s.tags.List(gctx)
		if err != nil {
			return fmt.Errorf("listing tags: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		c.entries, err = s.entries.List(gctx)
		if err != nil {
			return fmt.Errorf("listing entries: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &c, nil
}

// tag finds a tag by its normalized name.
func (c *catalog) tag(name string) (domain.Tag, bool) {
	for _, t := range c.tags {
		if t.Name == name {
			return t, true
		}
	}

	return domain.Tag{}, false
}
