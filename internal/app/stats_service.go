package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/learning-journal/internal/domain"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

// Stats is the streak summary plus the entries of one selected day.
type Stats struct {
	*domain.Streaks

	SelectedDate    domain.Day
	SelectedEntries []*domain.Entry
}

// StatsService computes streaks over any EntrySource, local or remote.
type StatsService struct {
	source   ports.EntrySource
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// StatsServiceConfig contains the dependencies of a StatsService.
// Location defaults to time.Local and Clock to time.Now.
type StatsServiceConfig struct {
	Source   ports.EntrySource
	Location *time.Location
	Clock    func() time.Time
	Logger   *slog.Logger
}

// NewStatsService panics if Source is missing.
func NewStatsService(cfg StatsServiceConfig) *StatsService {
	if cfg.Source == nil {
		panic("app: StatsServiceConfig.Source is required")
	}

	s := &StatsService{
		source:   cfg.Source,
		location: cfg.Location,
		now:      cfg.Clock,
		logger:   cfg.Logger,
	}

	if s.location == nil {
		s.location = time.Local
	}

	if s.now == nil {
		s.now = time.Now
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Stats loads every entry and computes the streak summary. selected picks
// the day whose entries are returned; nil means today.
func (s *StatsService) Stats(ctx context.Context, selected *domain.Day) (*Stats, error) {
	entries, err := s.source.ListEntries(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load entries for stats", slog.Any("error", err))
		return nil, fmt.Errorf("loading entries: %w", err)
	}

	now := s.now()
	streaks := domain.ComputeStreaks(entries, now, s.location)

	day := domain.DayOf(now, s.location)
	if selected != nil {
		day = *selected
	}

	stats := &Stats{
		Streaks:         streaks,
		SelectedDate:    day,
		SelectedEntries: streaks.EntriesOn(day),
	}

	if stats.SelectedEntries == nil {
		stats.SelectedEntries = []*domain.Entry{}
	}

	s.logger.DebugContext(ctx, "stats computed",
		slog.Int("current_streak", streaks.CurrentStreak),
		slog.Int("longest_streak", streaks.LongestStreak),
	)

	return stats, nil
}
