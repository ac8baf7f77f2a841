package service

import (
	"time"

	"prayer-roster-backend/internal/config"
	"prayer-roster-backend/internal/database/models"
)

// DefaultCutoffHour is the local hour from which a same-day meeting counts as past
const DefaultCutoffHour = 19

// RosterSettings controls slot seeding and the clock used for export stamps
type RosterSettings struct {
	Location   *time.Location
	CutoffHour int
	EndDate    time.Time // inclusive; zero means 31 December of the current year
	Now        func() time.Time
}

// SettingsFromConfig reads the roster time zone, cutoff hour and end date from cfg
func SettingsFromConfig(cfg *config.Config) RosterSettings {
	settings := RosterSettings{
		Location:   cfg.Location(),
		CutoffHour: cfg.RosterCutoffHour,
	}
	if cfg.RosterEndDate != "" {
		settings.EndDate = cfg.EndDate(time.Time{})
	}
	return settings
}

func (r RosterSettings) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}

func (r RosterSettings) now() time.Time {
	if r.Now == nil {
		return time.Now().In(r.location())
	}
	return r.Now().In(r.location())
}

func (r RosterSettings) endDate(now time.Time) time.Time {
	if r.EndDate.IsZero() {
		return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return dateOf(r.EndDate)
}

var weekdayKinds = []struct {
	kind    models.WeekdayKind
	weekday time.Weekday
}{
	{models.WeekdayTuesday, time.Tuesday},
	{models.WeekdayWednesday, time.Wednesday},
}

// NextOccurrence returns the date of the next meeting on weekday as seen from now.
// A meeting today counts only while now is before cutoffHour.
func NextOccurrence(now time.Time, weekday time.Weekday, cutoffHour int) time.Time {
	offset := (int(weekday) - int(now.Weekday()) + 7) % 7
	if offset == 0 && now.Hour() >= cutoffHour {
		offset = 7
	}
	return dateOf(now).AddDate(0, 0, offset)
}

// GenerateRoster builds one slot per week for every weekday kind, from its next occurrence
// up to end inclusive. All Tuesday slots come first, then all Wednesday slots.
func GenerateRoster(now time.Time, cutoffHour int, end time.Time) []models.Slot {
	last := dateOf(end)

	var slots []models.Slot
	for _, k := range weekdayKinds {
		for d := NextOccurrence(now, k.weekday, cutoffHour); !d.After(last); d = d.AddDate(0, 0, 7) {
			slots = append(slots, models.Slot{Date: d, Weekday: k.kind})
		}
	}
	return slots
}

// dateOf drops the clock part of t, keeping its calendar date as UTC midnight
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
