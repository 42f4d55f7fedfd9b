package gormstore

import (
	"context"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/jsamuelsen/learning-journal/internal/domain"
	"github.com/jsamuelsen/learning-journal/internal/platform/config"
)

// stepClock returns a time one minute later on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Minute)

	return c.now
}

type countingMetrics struct {
	mu          sync.Mutex
	tagsCreated int
}

func (m *countingMetrics) EntryChanged(string) {}

func (m *countingMetrics) TagsCreated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tagsCreated += n
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	opts = append([]Option{WithClock(newStepClock().Now)}, opts...)

	s, err := Open(context.Background(), config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         "file::memory:",
		AutoMigrate: true,
	}, opts...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func countRows(t *testing.T, s *Store, table string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, s.db.Table(table).Count(&n).Error)

	return n
}

func create(t *testing.T, s *Store, title, content string, tags ...string) *domain.Entry {
	t.Helper()

	e, err := s.Entries().Create(context.Background(), domain.NewEntry{Title: title, Content: content}, tags)
	require.NoError(t, err)

	return e
}

func tagNames(tags []domain.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	return names
}

func TestCreate_NormalizesTagVariants(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "Hooks", "useEffect runs after render", "React", " react ", "REACT")

	assert.Equal(t, []string{"react"}, e.TagNames())
	assert.Equal(t, int64(1), countRows(t, s, "tags"))
	assert.Equal(t, int64(1), countRows(t, s, "entry_tags"))
}

func TestCreate_ReusesExistingTag(t *testing.T) {
	s := newTestStore(t)

	first := create(t, s, "Channels", "unbuffered channels block", "go")
	second := create(t, s, "Generics", "type parameters", "Go")

	require.Len(t, first.Tags, 1)
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].ID, second.Tags[0].ID)
	assert.Equal(t, int64(1), countRows(t, s, "tags"))
	assert.Equal(t, int64(2), countRows(t, s, "entry_tags"))
}

func TestCreate_SetsTimestamps(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "Title", "Content")

	assert.NotZero(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.True(t, e.CreatedAt.Equal(e.UpdatedAt))
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)
}

func TestCreate_ReportsCreatedTags(t *testing.T) {
	m := &countingMetrics{}
	s := newTestStore(t, WithMetrics(m))

	create(t, s, "a", "a", "go", "sql")
	create(t, s, "b", "b", "go", "docker")

	assert.Equal(t, 3, m.tagsCreated)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Entries().Get(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestList_NewestFirstWithTags(t *testing.T) {
	s := newTestStore(t)

	older := create(t, s, "older", "first", "b", "a")
	newer := create(t, s, "newer", "second")

	entries, err := s.Entries().List(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)
	assert.Equal(t, []string{"a", "b"}, entries[1].TagNames())
	assert.Empty(t, entries[0].Tags)
}

func TestList_Empty(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Entries().List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestUpdate_ReplacesTagSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e := create(t, s, "t", "c", "a", "b")

	updated, err := s.Entries().Update(ctx, e.ID, domain.EntryPatch{}, []string{"c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c"}, updated.TagNames())
	assert.Equal(t, int64(1), countRows(t, s, "entry_tags"))

	tags, err := s.Tags().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tagNames(tags), "orphaned tags persist")
}

func TestUpdate_EmptyTagListClears(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "t", "c", "a")

	updated, err := s.Entries().Update(context.Background(), e.ID, domain.EntryPatch{}, []string{})
	require.NoError(t, err)

	assert.Empty(t, updated.Tags)
	assert.Equal(t, int64(0), countRows(t, s, "entry_tags"))
}

func TestUpdate_PatchesFieldsAndRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "before", "body")
	title := "after"

	updated, err := s.Entries().Update(context.Background(), e.ID, domain.EntryPatch{Title: &title}, nil)
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(e.CreatedAt), "createdAt is immutable")
	assert.True(t, updated.UpdatedAt.After(e.UpdatedAt))
}

func TestUpdate_NilTagListKeepsAssociations(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "t", "c", "go", "sql")
	title := "renamed"

	updated, err := s.Entries().Update(context.Background(), e.ID, domain.EntryPatch{Title: &title}, nil)
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, []string{"go", "sql"}, updated.TagNames())
	assert.Equal(t, int64(2), countRows(t, s, "entry_tags"))
}

func TestUpdate_EmptyPatchStillTouchesUpdatedAt(t *testing.T) {
	s := newTestStore(t)

	e := create(t, s, "same", "same", "x")

	updated, err := s.Entries().Update(context.Background(), e.ID, domain.EntryPatch{}, e.TagNames())
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(e.UpdatedAt))
	assert.Equal(t, e.TagNames(), updated.TagNames())
}

func TestUpdate_NotFoundRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Entries().Update(ctx, 999, domain.EntryPatch{}, []string{"ghost"})

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, int64(0), countRows(t, s, "tags"))
}

func TestDelete_CascadesToAssociations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	gone := create(t, s, "gone", "c", "shared", "orphan")
	kept := create(t, s, "kept", "c", "shared")

	require.NoError(t, s.Entries().Delete(ctx, gone.ID))

	_, err := s.Entries().Get(ctx, gone.ID)
	assert.True(t, domain.IsNotFound(err))

	assert.Equal(t, int64(1), countRows(t, s, "entry_tags"))

	got, err := s.Entries().Get(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, got.TagNames())

	tags, err := s.Tags().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"orphan", "shared"}, tagNames(tags))
}

func TestDelete_MissingIsNoop(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Entries().Delete(context.Background(), 12345))
}

func TestSearch_UnionOfTitleContentAndTags(t *testing.T) {
	s := newTestStore(t)

	a := create(t, s, "Learning Kotlin coroutines", "suspend functions")
	b := create(t, s, "Android notes", "jetpack compose", "kotlin")
	create(t, s, "Rust lifetimes", "borrow checker", "rust")
	d := create(t, s, "JVM", "kotlin compiles to bytecode", "Kotlin")

	results, err := s.Entries().Search(context.Background(), "KOTLIN")
	require.NoError(t, err)

	ids := make([]int64, 0, len(results))
	for _, e := range results {
		ids = append(ids, e.ID)
	}

	assert.Equal(t, []int64{d.ID, b.ID, a.ID}, ids, "each match once, newest first")
	assert.Equal(t, []string{"kotlin"}, results[1].TagNames())
}

func TestSearch_ReturnsFullTagList(t *testing.T) {
	s := newTestStore(t)

	create(t, s, "t", "c", "golang", "testing")

	results, err := s.Entries().Search(context.Background(), "lang")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"golang", "testing"}, results[0].TagNames())
}

func TestSearch_WildcardsMatchLiterally(t *testing.T) {
	s := newTestStore(t)

	pct := create(t, s, "100% coverage", "c")
	create(t, s, "1000 lines", "c")
	under := create(t, s, "snake_case", "c")
	create(t, s, "snakescase", "c")
	bang := create(t, s, "wow!", "c")

	tests := []struct {
		query    string
		expected []int64
	}{
		{"0%", []int64{pct.ID}},
		{"e_c", []int64{under.ID}},
		{"!", []int64{bang.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := s.Entries().Search(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(results))
			for _, e := range results {
				ids = append(ids, e.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSearch_FoldsCaseBeyondASCII(t *testing.T) {
	s := newTestStore(t)

	uber := create(t, s, "Über Go", "Résumé notes", "Ökonomie")
	mixed := create(t, s, "GoLang Tips", "Straße names in ÇAĞ")

	tests := []struct {
		query    string
		expected []int64
	}{
		{"Über", []int64{uber.ID}},
		{"über", []int64{uber.ID}},
		{"ÜBER", []int64{uber.ID}},
		{"résumé", []int64{uber.ID}},
		{"RÉSUMÉ", []int64{uber.ID}},
		{"ökonomie", []int64{uber.ID}},
		{"ÖKONOMIE", []int64{uber.ID}},
		{"golang tips", []int64{mixed.ID}},
		{"gOlAnG", []int64{mixed.ID}},
		{"STRASSE", nil},
		{"straße", []int64{mixed.ID}},
		{"çağ", []int64{mixed.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := s.Entries().Search(context.Background(), tt.query)
			require.NoError(t, err)

			var ids []int64
			for _, e := range results {
				ids = append(ids, e.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFoldValue(t *testing.T) {
	tests := []struct {
		name     string
		in       driver.Value
		expected driver.Value
	}{
		{"text", "ÄÖÜ Go", "äöü go"},
		{"blob", []byte("ÉTÉ"), "été"},
		{"null", nil, nil},
		{"integer", int64(7), int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := foldValue(nil, []driver.Value{tt.in})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSearch_NoMatches(t *testing.T) {
	s := newTestStore(t)

	create(t, s, "t", "c", "x")

	results, err := s.Entries().Search(context.Background(), "absent")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListEntries_MatchesList(t *testing.T) {
	s := newTestStore(t)

	create(t, s, "one", "c")

	entries, err := s.Entries().ListEntries(context.Background())

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetOrCreate_ExistingFirstThenNew(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Tags().GetOrCreate(ctx, []string{"b"})
	require.NoError(t, err)

	tags, err := s.Tags().GetOrCreate(ctx, []string{"c", "B", "a", "c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, tagNames(tags))
	assert.Equal(t, int64(3), countRows(t, s, "tags"))
}

func TestGetOrCreate_EmptyInput(t *testing.T) {
	s := newTestStore(t)

	for _, input := range [][]string{nil, {}, {"  ", ""}} {
		tags, err := s.Tags().GetOrCreate(context.Background(), input)

		require.NoError(t, err)
		assert.Empty(t, tags)
	}

	assert.Equal(t, int64(0), countRows(t, s, "tags"))
}

func TestGetOrCreate_ConcurrentCallersShareOneRow(t *testing.T) {
	s := newTestStore(t)

	var g errgroup.Group

	ids := make([]int64, 8)
	for i := range ids {
		g.Go(func() error {
			tags, err := s.Tags().GetOrCreate(context.Background(), []string{"Go"})
			if err != nil {
				return err
			}

			ids[i] = tags[0].ID

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	assert.Equal(t, int64(1), countRows(t, s, "tags"))
}

func TestCountUsage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	create(t, s, "1", "c", "go", "sql")
	create(t, s, "2", "c", "go")
	create(t, s, "3", "c", "docker")
	_, err := s.Tags().GetOrCreate(ctx, []string{"unused"})
	require.NoError(t, err)

	counts, err := s.Tags().CountUsage(ctx)
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, "go", counts[0].Tag.Name)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "docker", counts[1].Tag.Name)
	assert.Equal(t, "sql", counts[2].Tag.Name)
	assert.Equal(t, 1, counts[2].Count)
}

func TestStore_HealthCheck(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, "database", s.Name())
	assert.NoError(t, s.Check(context.Background()))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "oracle", DSN: "x"})

	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"journal.db", "journal.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:journal.db?cache=shared", "file:journal.db?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)", "x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, sqliteDSN(tt.in))
		})
	}
}

func TestCreateAll_KeepsDraftOrder(t *testing.T) {
	m := &countingMetrics{}
	s := newTestStore(t, WithMetrics(m))

	created, err := s.Entries().CreateAll(context.Background(), []domain.EntryDraft{
		{NewEntry: domain.NewEntry{Title: "first", Content: "a"}, Tags: []string{"Go"}},
		{NewEntry: domain.NewEntry{Title: "second", Content: "b"}, Tags: []string{"go", "sql"}},
	})

	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "first", created[0].Title)
	assert.Equal(t, []string{"go", "sql"}, tagNames(created[1].Tags))
	assert.Equal(t, 2, m.tagsCreated)
	assert.Equal(t, int64(2), countRows(t, s, "tags"))
}

func TestCreateAll_FailureRollsBackEverything(t *testing.T) {
	s := newTestStore(t)

	err := s.db.Callback().Create().Before("gorm:create").Register("test:reject_boom", func(db *gorm.DB) {
		if row, ok := db.Statement.Model.(*entryModel); ok && row.Title == "boom" {
			_ = db.AddError(errors.New("rejected"))
		}
	})
	require.NoError(t, err)

	_, err = s.Entries().CreateAll(context.Background(), []domain.EntryDraft{
		{NewEntry: domain.NewEntry{Title: "kept?", Content: "a"}, Tags: []string{"go"}},
		{NewEntry: domain.NewEntry{Title: "boom", Content: "b"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 2 of 2")
	assert.Equal(t, int64(0), countRows(t, s, "entries"))
	assert.Equal(t, int64(0), countRows(t, s, "tags"))
}
