package dto

import (
	"time"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// CreateEntryRequest is the body of POST /api/entries.
type CreateEntryRequest struct {
	Title   string   `json:"title" validate:"notblank,max=200"`
	Content string   `json:"content" validate:"notblank,max=5000"`
	Tags    []string `json:"tags"`
}

// NewEntry returns the entry fields of the request.
func (r *CreateEntryRequest) NewEntry() domain.NewEntry {
	return domain.NewEntry{Title: r.Title, Content: r.Content}
}

// TagNames returns the raw tag names, never nil.
func (r *CreateEntryRequest) TagNames() []string {
	if r.Tags == nil {
		return []string{}
	}

	return r.Tags
}

// UpdateEntryRequest is the body of PUT /api/entries/:id. Absent fields
// are left unchanged; "tags": [] clears the tag set.
type UpdateEntryRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// Validate checks the fields that are present.
func (r *UpdateEntryRequest) Validate() error {
	errs := FieldErrors{}

	if r.Title != nil {
		if err := Validator().Var(*r.Title, "notblank,max=200"); err != nil {
			errs["title"] = firstMessage(err)
		}
	}

	if r.Content != nil {
		if err := Validator().Var(*r.Content, "notblank,max=5000"); err != nil {
			errs["content"] = firstMessage(err)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Patch returns the field changes of the request.
func (r *UpdateEntryRequest) Patch() domain.EntryPatch {
	return domain.EntryPatch{Title: r.Title, Content: r.Content}
}

// TagNames returns nil when tags were absent and a non-nil slice otherwise.
func (r *UpdateEntryRequest) TagNames() []string {
	if r.Tags == nil {
		return nil
	}

	if *r.Tags == nil {
		return []string{}
	}

	return *r.Tags
}

// TagResponse is a tag as returned by the API.
type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EntryResponse is an entry with its tags.
type EntryResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Tags      []TagResponse `json:"tags"`
}

// ToEntryResponse converts a domain entry.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Tags:      ToTagResponses(e.Tags),
	}
}

// ToEntryResponses converts a list, returning an empty slice for no entries.
func ToEntryResponses(entries []*domain.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}

	return out
}

// ToTagResponses converts tags, returning an empty slice for none.
func ToTagResponses(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID, Name: t.Name})
	}

	return out
}

// TagCountResponse is one row of GET /api/tags/summary.
type TagCountResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ToTagCountResponses converts usage counts.
func ToTagCountResponses(counts []domain.TagCount) []TagCountResponse {
	out := make([]TagCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, TagCountResponse{ID: c.Tag.ID, Name: c.Tag.Name, Count: c.Count})
	}

	return out
}

// TagGroupResponse is a tag with its entries, newest first.
type TagGroupResponse struct {
	Tag     TagResponse     `json:"tag"`
	Entries []EntryResponse `json:"entries"`
}

// ToTagGroupResponse converts a tag group.
func ToTagGroupResponse(g *domain.TagGroup) TagGroupResponse {
	return TagGroupResponse{
		Tag:     TagResponse{ID: g.Tag.ID, Name: g.Tag.Name},
		Entries: ToEntryResponses(g.Entries),
	}
}

// SearchQuery binds GET /api/entries/search.
type SearchQuery struct {
	Q string `form:"q" json:"q" validate:"notblank"`
}

// ImportResponse is the body of a successful POST /api/import.
type ImportResponse struct {
	Imported int `json:"imported"`
}

func firstMessage(err error) string {
	for _, msg := range ValidationErrors(err) {
		return msg
	}

	return err.Error()
}
