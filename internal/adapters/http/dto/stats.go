package dto

import (
	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// StatsQuery binds GET /api/stats. Date defaults to today in the journal
// time zone.
type StatsQuery struct {
	Date string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Day parses Date, returning nil when it is empty.
func (q *StatsQuery) Day() (*domain.Day, error) {
	if q.Date == "" {
		return nil, nil //nolint:nilnil // no date selected
	}

	d, err := domain.ParseDay(q.Date)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// StatsResponse is the streak summary returned by GET /api/stats.
type StatsResponse struct {
	CurrentStreak   int             `json:"currentStreak"`
	LongestStreak   int             `json:"longestStreak"`
	TotalEntries    int             `json:"totalEntries"`
	TotalDaysActive int             `json:"totalDaysActive"`
	ActiveDays      []domain.Day    `json:"activeDays"`
	SelectedDate    domain.Day      `json:"selectedDate"`
	SelectedEntries []EntryResponse `json:"selectedEntries"`
}

// ToStatsResponse converts computed stats.
func ToStatsResponse(s *app.Stats) StatsResponse {
	days := s.ActiveDays
	if days == nil {
		days = []domain.Day{}
	}

	return StatsResponse{
		CurrentStreak:   s.CurrentStreak,
		LongestStreak:   s.LongestStreak,
		TotalEntries:    s.TotalEntries,
		TotalDaysActive: s.TotalDaysActive,
		ActiveDays:      days,
		SelectedDate:    s.SelectedDate,
		SelectedEntries: ToEntryResponses(s.SelectedEntries),
	}
}
