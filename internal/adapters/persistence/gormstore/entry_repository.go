package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// likeEscape is the ESCAPE character for search patterns. It is not special
// in string literals on any supported dialect, unlike backslash on MySQL.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// EntryRepository implements ports.EntryRepository and ports.EntrySource.
type EntryRepository struct {
	store *Store
}

// List returns all entries with tags, newest first.
func (r *EntryRepository) List(ctx context.Context) ([]*domain.Entry, error) {
	db := r.store.db.WithContext(ctx)

	var rows []entryModel
	if err := newestFirst(db).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return withTags(db, rows)
}

// ListEntries implements ports.EntrySource.
func (r *EntryRepository) ListEntries(ctx context.Context) ([]*domain.Entry, error) {
	return r.List(ctx)
}

// Get returns one entry with its tags.
func (r *EntryRepository) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	return loadEntry(r.store.db.WithContext(ctx), id)
}

// Create inserts the entry, resolves its tags and links them in a single
// transaction. Both timestamps are set to the same instant.
func (r *EntryRepository) Create(ctx context.Context, entry domain.NewEntry, tagNames []string) (*domain.Entry, error) {
	var (
		created *domain.Entry
		newTags int
	)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		created, newTags, err = r.create(tx, entry, tagNames)

		return err
	})
	if err != nil {
		return nil, err
	}

	r.store.metrics.TagsCreated(newTags)

	return created, nil
}

// CreateAll creates every draft in one transaction, in order. Either all
// entries are stored or none are.
func (r *EntryRepository) CreateAll(ctx context.Context, drafts []domain.EntryDraft) ([]*domain.Entry, error) {
	created := make([]*domain.Entry, 0, len(drafts))
	newTags := 0

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range drafts {
			entry, n, err := r.create(tx, drafts[i].NewEntry, drafts[i].Tags)
			if err != nil {
				return fmt.Errorf("creating entry %d of %d: %w", i+1, len(drafts), err)
			}

			newTags += n
			created = append(created, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.store.metrics.TagsCreated(newTags)

	return created, nil
}

func (r *EntryRepository) create(tx *gorm.DB, entry domain.NewEntry, tagNames []string) (*domain.Entry, int, error) {
	now := r.store.timestamp()
	row := entryModel{
		Title:     entry.Title,
		Content:   entry.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := tx.Create(&row).Error; err != nil {
		return nil, 0, fmt.Errorf("inserting entry: %w", err)
	}

	tags, n, err := r.store.tags.getOrCreate(tx, tagNames)
	if err != nil {
		return nil, 0, err
	}

	if err := linkTags(tx, row.ID, tags); err != nil {
		return nil, 0, err
	}

	created, err := loadEntry(tx, row.ID)
	if err != nil {
		return nil, 0, err
	}

	return created, n, nil
}

// Update applies patch, refreshes UpdatedAt and replaces the tag set with
// tagNames, atomically. A nil tagNames leaves the associations untouched.
// A missing id rolls back and returns NotFound.
func (r *EntryRepository) Update(
	ctx context.Context,
	id int64,
	patch domain.EntryPatch,
	tagNames []string,
) (*domain.Entry, error) {
	var (
		updated *domain.Entry
		newTags int
	)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entryModel

		err := tx.Clauses(lockForUpdate(tx)...).Select("id").First(&current, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewEntryNotFoundError(id)
		}

		if err != nil {
			return fmt.Errorf("loading entry %d: %w", id, err)
		}

		changes := map[string]any{"updated_at": r.store.timestamp()}
		if patch.Title != nil {
			changes["title"] = *patch.Title
		}

		if patch.Content != nil {
			changes["content"] = *patch.Content
		}

		if err := tx.Model(&entryModel{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return fmt.Errorf("updating entry %d: %w", id, err)
		}

		if tagNames != nil {
			if err := tx.Where("entry_id = ?", id).Delete(&entryTagModel{}).Error; err != nil {
				return fmt.Errorf("detaching tags from entry %d: %w", id, err)
			}

			tags, n, err := r.store.tags.getOrCreate(tx, tagNames)
			if err != nil {
				return err
			}

			newTags = n

			if err := linkTags(tx, id, tags); err != nil {
				return err
			}
		}

		updated, err = loadEntry(tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	r.store.metrics.TagsCreated(newTags)

	return updated, nil
}

// Delete removes the entry. Its entry_tags rows go with it through the
// foreign key cascade. Deleting a missing id is not an error.
func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	err := r.store.db.WithContext(ctx).Delete(&entryModel{}, id).Error
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}

	return nil
}

// Search matches query as a case-insensitive substring of the title, the
// content or any tag name. LIKE wildcards in query match literally.
func (r *EntryRepository) Search(ctx context.Context, query string) ([]*domain.Entry, error) {
	db := r.store.db.WithContext(ctx)
	pattern := "%" + likeReplacer.Replace(strings.ToLower(query)) + "%"
	like := " LIKE ? ESCAPE '" + likeEscape + "'"
	lower := lowerFunc(db)

	taggedWith := db.Model(&entryTagModel{}).
		Select("entry_tags.entry_id").
		Joins("JOIN tags ON tags.id = entry_tags.tag_id").
		Where(lower+"(tags.name)"+like, pattern)

	var rows []entryModel

	err := newestFirst(db).
		Where(lower+"(title)"+like, pattern).
		Or(lower+"(content)"+like, pattern).
		Or("id IN (?)", taggedWith).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}

	return withTags(db, rows)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// lockForUpdate serializes concurrent updates of one entry on dialects
// with row locks. SQLite already serializes writers.
func lockForUpdate(tx *gorm.DB) []clause.Expression {
	if tx.Dialector.Name() == "sqlite" {
		return nil
	}

	return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
}

func linkTags(tx *gorm.DB, entryID int64, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	links := make([]entryTagModel, 0, len(tags))
	for _, t := range tags {
		links = append(links, entryTagModel{EntryID: entryID, TagID: t.ID})
	}

	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return fmt.Errorf("linking tags to entry %d: %w", entryID, err)
	}

	return nil
}

func loadEntry(db *gorm.DB, id int64) (*domain.Entry, error) {
	var row entryModel

	err := db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewEntryNotFoundError(id)
	}

	if err != nil {
		return nil, fmt.Errorf("loading entry %d: %w", id, err)
	}

	entries, err := withTags(db, []entryModel{row})
	if err != nil {
		return nil, err
	}

	return entries[0], nil
}

// withTags attaches tags to rows with one query for the whole batch. Each
// entry's tags are ordered by name.
func withTags(db *gorm.DB, rows []entryModel) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0, len(rows))
	if len(rows) == 0 {
		return entries, nil
	}

	ids := make([]int64, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	var links []entryTagRow

	err := db.Model(&entryTagModel{}).
		Select("entry_tags.entry_id, tags.id AS tag_id, tags.name").
		Joins("JOIN tags ON tags.id = entry_tags.tag_id").
		Where("entry_tags.entry_id IN ?", ids).
		Order("tags.name ASC").
		Scan(&links).Error
	if err != nil {
		return nil, fmt.Errorf("loading entry tags: %w", err)
	}

	byEntry := make(map[int64][]domain.Tag, len(rows))
	for _, l := range links {
		byEntry[l.EntryID] = append(byEntry[l.EntryID], domain.Tag{ID: l.TagID, Name: l.Name})
	}

	for i := range rows {
		entries = append(entries, rows[i].toDomain(byEntry[rows[i].ID]))
	}

	return entries, nil
}
