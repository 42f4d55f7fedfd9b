package gormstore

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// TagRepository implements ports.TagRepository.
type TagRepository struct {
	store *Store
}

// List returns every tag ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []tagModel

	err := r.store.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	tags := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, rows[i].toDomain())
	}

	return tags, nil
}

// GetOrCreate resolves names to tags in its own transaction.
func (r *TagRepository) GetOrCreate(ctx context.Context, names []string) ([]domain.Tag, error) {
	names = domain.NormalizeTagNames(names)
	if len(names) == 0 {
		return []domain.Tag{}, nil
	}

	var (
		tags    []domain.Tag
		created int
	)

	err := r.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		tags, created, err = r.getOrCreate(tx, names)

		return err
	})
	if err != nil {
		return nil, err
	}

	r.store.metrics.TagsCreated(created)

	return tags, nil
}

// CountUsage returns tags used by at least one entry, most used first and
// by name within equal counts.
func (r *TagRepository) CountUsage(ctx context.Context) ([]domain.TagCount, error) {
	var rows []struct {
		ID   int64
		Name string
		Uses int
	}

	err := r.store.db.WithContext(ctx).
		Table("tags").
		Select("tags.id, tags.name, COUNT(entry_tags.entry_id) AS uses").
		Joins("JOIN entry_tags ON entry_tags.tag_id = tags.id").
		Group("tags.id, tags.name").
		Order("uses DESC, tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("counting tag usage: %w", err)
	}

	counts := make([]domain.TagCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.TagCount{
			Tag:   domain.Tag{ID: row.ID, Name: row.Name},
			Count: row.Uses,
		})
	}

	return counts, nil
}

// getOrCreate runs inside tx. It looks the names up in one query, inserts
// the missing ones with ON CONFLICT DO NOTHING and reads them back, so a
// concurrent insert of the same name is harmless. The second return value
// is the number of rows this call actually inserted.
func (r *TagRepository) getOrCreate(tx *gorm.DB, names []string) ([]domain.Tag, int, error) {
	names = domain.NormalizeTagNames(names)
	if len(names) == 0 {
		return []domain.Tag{}, 0, nil
	}

	byName, err := findTagsByName(tx, names, false)
	if err != nil {
		return nil, 0, err
	}

	var missing []string

	for _, name := range names {
		if _, ok := byName[name]; !ok {
			missing = append(missing, name)
		}
	}

	created := 0

	if len(missing) > 0 {
		rows := make([]tagModel, 0, len(missing))
		for _, name := range missing {
			rows = append(rows, tagModel{Name: name})
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&rows)
		if res.Error != nil {
			return nil, 0, fmt.Errorf("inserting tags: %w", res.Error)
		}

		created = int(res.RowsAffected)

		// Ids returned by a batch insert that skipped conflicting rows cannot
		// be matched back to names, so read them again.
		fresh, err := findTagsByName(tx, missing, false)
		if err != nil {
			return nil, 0, err
		}

		if len(fresh) < len(missing) && tx.Dialector.Name() != "sqlite" {
			// Under REPEATABLE READ a plain select keeps the snapshot taken
			// before a concurrent insert committed. A locking read does not.
			fresh, err = findTagsByName(tx, missing, true)
			if err != nil {
				return nil, 0, err
			}
		}

		for name, tag := range fresh {
			byName[name] = tag
		}
	}

	tags := make([]domain.Tag, 0, len(names))

	for _, group := range [][]string{existingOf(names, missing), missing} {
		for _, name := range group {
			tag, ok := byName[name]
			if !ok {
				return nil, 0, domain.NewConflictError("tag", strconv.Quote(name)+" could not be resolved after insert")
			}

			tags = append(tags, tag)
		}
	}

	return tags, created, nil
}

func findTagsByName(tx *gorm.DB, names []string, locking bool) (map[string]domain.Tag, error) {
	q := tx.Where("name IN ?", names)
	if locking {
		q = q.Clauses(clause.Locking{Strength: "SHARE"})
	}

	var rows []tagModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("looking up tags: %w", err)
	}

	byName := make(map[string]domain.Tag, len(rows))
	for i := range rows {
		byName[rows[i].Name] = rows[i].toDomain()
	}

	return byName, nil
}

// existingOf returns names not in missing, keeping input order.
func existingOf(names, missing []string) []string {
	skip := make(map[string]struct{}, len(missing))
	for _, m := range missing {
		skip[m] = struct{}{}
	}

	out := make([]string, 0, len(names)-len(missing))
	for _, n := range names {
		if _, ok := skip[n]; !ok {
			out = append(out, n)
		}
	}

	return out
}
