package gormstore

import (
	"time"

	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// Timestamps come from the store clock, never from gorm's NowFunc, so the
// auto-time tags are switched off.
type entryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"size:200;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (entryModel) TableName() string { return "entries" }

type tagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

func (tagModel) TableName() string { return "tags" }

// entryTagModel is the junction row. Deleting an entry cascades to its
// rows here; tags themselves are never removed by an entry delete.
type entryTagModel struct {
	EntryID int64      `gorm:"primaryKey;autoIncrement:false"`
	TagID   int64      `gorm:"primaryKey;autoIncrement:false;index"`
	Entry   entryModel `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	Tag     tagModel   `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (entryTagModel) TableName() string { return "entry_tags" }

// entryTagRow is one row of entry_tags joined with tags.
type entryTagRow struct {
	EntryID int64
	TagID   int64
	Name    string
}

func (m *entryModel) toDomain(tags []domain.Tag) *domain.Entry {
	if tags == nil {
		tags = []domain.Tag{}
	}

	return &domain.Entry{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Tags:      tags,
	}
}

func (m *tagModel) toDomain() domain.Tag {
	return domain.Tag{ID: m.ID, Name: m.Name}
}
