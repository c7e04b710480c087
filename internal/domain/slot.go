package domain

import "time"

// TimeSlot is a derived candidate booking window. Instants are UTC;
// slots are recomputed on every query and never persisted.
type TimeSlot struct {
	StartAt   time.Time
	EndAt     time.Time
	Available bool
}

// DayAvailability is the derived availability of one calendar day
type DayAvailability struct {
	Date            time.Time // midnight in the civil time zone
	HasAvailability bool
	Slots           []TimeSlot
}

// StaffAvailability is one staff member's per-day availability for a month
type StaffAvailability struct {
	StaffID int64
	Days    []DayAvailability
}

// MonthlyAvailability combines the tenant-wide per-day availability
// with the per-staff breakdown for a whole calendar month
type MonthlyAvailability struct {
	Year  int
	Month time.Month
	Days  []DayAvailability
	Staff []StaffAvailability
}

// HasAnySlot returns true if at least one day of the tenant-wide
// part has an open slot
func (m *MonthlyAvailability) HasAnySlot() bool {
	for _, day := range m.Days {
		if day.HasAvailability {
			return true
		}
	}
	return false
}
