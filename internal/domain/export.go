package domain

import "time"

// Export is a read-only snapshot of the whole journal, suitable for backup.
// Tags are flattened to their names.
type Export struct {
	ExportDate   time.Time       `json:"exportDate"`
	TotalEntries int             `json:"totalEntries"`
	Entries      []ExportedEntry `json:"entries"`
}

// ExportedEntry is one entry inside an Export.
type ExportedEntry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewExport builds an export document from entries as of now.
func NewExport(entries []*Entry, now time.Time) *Export {
	exp := &Export{
		ExportDate:   now.UTC(),
		TotalEntries: len(entries),
		Entries:      make([]ExportedEntry, 0, len(entries)),
	}

	for _, e := range entries {
		exp.Entries = append(exp.Entries, ExportedEntry{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Content,
			Tags:      e.TagNames(),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return exp
}

// ExportFileName is the suggested download name for an export taken at
// now, dated by the journal's calendar in loc. A nil loc means UTC.
func ExportFileName(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return "learning-journal-backup-" + DayOf(now, loc).String() + ".json"
}
