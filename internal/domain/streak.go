package domain

import (
	"fmt"
	"slices"
	"time"
)

// dayLayout is the wire and display format of a calendar day.
const dayLayout = "2006-01-02"

// Day is a calendar date with the time of day discarded.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in loc. A nil loc means time.Local.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}

	y, m, d := t.In(loc).Date()

	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, NewValidationErrorWithValue("date", "must be formatted as YYYY-MM-DD", s)
	}

	return DayOf(t, time.UTC), nil
}

// AddDays returns the day n calendar days later (earlier when n is negative).
// Arithmetic is done in UTC so DST transitions never skip or repeat a day.
func (d Day) AddDays(n int) Day {
	return DayOf(d.midnightUTC().AddDate(0, 0, n), time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.Compare(other) < 0
}

// Compare returns -1, 0 or +1 ordering d relative to other.
func (d Day) Compare(other Day) int {
	return d.midnightUTC().Compare(other.midnightUTC())
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Day) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Streaks is the activity summary derived from an entry list.
type Streaks struct {
	// CurrentStreak counts consecutive active days ending today, or ending
	// yesterday when nothing has been written yet today.
	CurrentStreak int

	// LongestStreak is the longest run of consecutive active days.
	LongestStreak int

	// TotalEntries is the number of entries in the input.
	TotalEntries int

	// TotalDaysActive is the number of distinct active days.
	TotalDaysActive int

	// ActiveDays lists every active day in ascending order.
	ActiveDays []Day

	byDay map[Day][]*Entry
}

// EntriesOn returns the entries created on day, in input order.
func (s *Streaks) EntriesOn(day Day) []*Entry {
	return s.byDay[day]
}

// IsActive reports whether at least one entry was created on day.
func (s *Streaks) IsActive(day Day) bool {
	_, ok := s.byDay[day]
	return ok
}

// ComputeStreaks derives streak statistics from entries. It is pure: the
// same entries, now and loc always give the same result. Days are taken
// from CreatedAt in loc (nil means time.Local).
func ComputeStreaks(entries []*Entry, now time.Time, loc *time.Location) *Streaks {
	s := &Streaks{
		TotalEntries: len(entries),
		byDay:        make(map[Day][]*Entry),
	}

	for _, e := range entries {
		day := DayOf(e.CreatedAt, loc)
		if _, ok := s.byDay[day]; !ok {
			s.ActiveDays = append(s.ActiveDays, day)
		}

		s.byDay[day] = append(s.byDay[day], e)
	}

	slices.SortFunc(s.ActiveDays, Day.Compare)
	s.TotalDaysActive = len(s.ActiveDays)
	s.CurrentStreak = s.currentStreak(DayOf(now, loc))
	s.LongestStreak = longestRun(s.ActiveDays)

	return s
}

func (s *Streaks) currentStreak(today Day) int {
	check := today
	if !s.IsActive(check) {
		check = check.AddDays(-1)
	}

	streak := 0
	for s.IsActive(check) {
		streak++
		check = check.AddDays(-1)
	}

	return streak
}

// longestRun expects days sorted ascending without duplicates.
func longestRun(days []Day) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1

	for i := 1; i < len(days); i++ {
		if days[i-1].AddDays(1) == days[i] {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}

	return longest
}
