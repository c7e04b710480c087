package domain

import "time"

// ReservationMenu defines how long a booking occupies and which
// minute offsets within an hour are valid slot starts.
// Exactly one menu per tenant; a missing menu falls back to the default.
type ReservationMenu struct {
	ID              int64
	TenantID        int64
	Name            string
	DurationMinutes int
	StartMinutes    []int // ordered, each in [0, 59]
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultMenu returns the documented fallback menu:
// 30-minute bookings starting on the hour and half hour
func DefaultMenu() *ReservationMenu {
	return &ReservationMenu{
		DurationMinutes: DefaultSlotDurationMinutes,
		StartMinutes:    append([]int(nil), DefaultStartMinutes...),
	}
}

// Validate checks duration and start-minute constraints
func (m *ReservationMenu) Validate() error {
	if m.DurationMinutes < MinSlotDurationMinutes || m.DurationMinutes > MaxSlotDurationMinutes {
		return ErrInvalidMenuDuration
	}
	if len(m.StartMinutes) == 0 {
		return ErrInvalidStartMinutes
	}
	prev := -1
	for _, minute := range m.StartMinutes {
		if minute < 0 || minute > 59 || minute <= prev {
			return ErrInvalidStartMinutes
		}
		prev = minute
	}
	return nil
}
