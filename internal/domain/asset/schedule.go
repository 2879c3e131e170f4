package asset

import (
	"fmt"
	"time"
)

// Schedule is the recurring-work interval embedded in an asset, one for
// cleaning and one for maintenance.
type Schedule struct {
	intervalDays int
	nextDate     time.Time
}

func NewSchedule(intervalDays int, anchor time.Time, now time.Time) (Schedule, error) {
	if intervalDays <= 0 {
		return Schedule{}, fmt.Errorf("interval must be positive, got %d", intervalDays)
	}

	return Schedule{
		intervalDays: intervalDays,
		nextDate:     NextDueDate(anchor, intervalDays, now),
	}, nil
}

func ReconstructSchedule(intervalDays int, nextDate time.Time) (Schedule, error) {
	if intervalDays <= 0 {
		return Schedule{}, fmt.Errorf("interval must be positive, got %d", intervalDays)
	}
	return Schedule{intervalDays: intervalDays, nextDate: nextDate}, nil
}

func (s Schedule) IntervalDays() int {
	return s.intervalDays
}

func (s Schedule) NextDate() time.Time {
	return s.nextDate
}

// IsDue reports whether the schedule has reached its next date relative
// to the given midnight-normalized reference time.
func (s Schedule) IsDue(today time.Time) bool {
	return !s.nextDate.After(today)
}

// Advance reseeds the schedule from "now" after the scheduler fires: the
// new interval anchors at the actual trigger time, not the stale due date.
func (s Schedule) Advance(now time.Time) Schedule {
	return Schedule{
		intervalDays: s.intervalDays,
		nextDate:     NextDueDate(now, s.intervalDays, now),
	}
}

// NextDueDate advances anchor by whole interval multiples until the result
// is strictly after now. A schedule that lapsed across several intervals
// (asset downtime) lands on the next future boundary, never on a partial
// interval.
func NextDueDate(anchor time.Time, intervalDays int, now time.Time) time.Time {
	next := anchor
	interval := time.Duration(intervalDays) * 24 * time.Hour
	for !next.After(now) {
		next = next.Add(interval)
	}
	return next
}
