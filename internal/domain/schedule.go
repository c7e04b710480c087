package domain

import (
	"time"

	"github.com/ktnb/ARS-ReservationService/pkg/types"
)

// BusinessHourInterval represents one open interval on a given weekday,
// expressed as local wall-clock time in the tenant's civil time zone.
// A weekday may carry several disjoint intervals (split morning/evening
// hours). Intervals never cross midnight.
type BusinessHourInterval struct {
	DayOfWeek time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks the start < end invariant and the HH:MM format
func (i BusinessHourInterval) Validate() error {
	if err := i.StartTime.Validate(); err != nil {
		return err
	}
	if err := i.EndTime.Validate(); err != nil {
		return err
	}
	if !i.StartTime.IsBefore(i.EndTime) {
		return ErrIntervalNotOrdered
	}
	return nil
}

// Contains returns true if other lies fully inside this interval
// on the same weekday
func (i BusinessHourInterval) Contains(other BusinessHourInterval) bool {
	if i.DayOfWeek != other.DayOfWeek {
		return false
	}
	return !other.StartTime.IsBefore(i.StartTime) && !other.EndTime.IsAfter(i.EndTime)
}

// Overlaps returns true if the two intervals share any time on the
// same weekday; touching boundaries do not overlap
func (i BusinessHourInterval) Overlaps(other BusinessHourInterval) bool {
	if i.DayOfWeek != other.DayOfWeek {
		return false
	}
	return i.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(i.EndTime)
}

// WeeklySchedule is the full business-hours set of one owner
// (a tenant or a single staff member)
type WeeklySchedule []BusinessHourInterval

// ForWeekday returns the intervals open on the given weekday,
// preserving the stored order
func (s WeeklySchedule) ForWeekday(day time.Weekday) []BusinessHourInterval {
	var result []BusinessHourInterval
	for _, interval := range s {
		if interval.DayOfWeek == day {
			result = append(result, interval)
		}
	}
	return result
}

// ContainsInterval returns true if the given interval fits fully inside
// at least one interval of the schedule. Used for the staff-hours
// write-time invariant: staff hours must be a subset of tenant hours.
func (s WeeklySchedule) ContainsInterval(interval BusinessHourInterval) bool {
	for _, own := range s {
		if own.Contains(interval) {
			return true
		}
	}
	return false
}
