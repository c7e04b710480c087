package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/ptr"
)

func reservationAt(t time.Time, durationMinutes int) *domain.Reservation {
	return &domain.Reservation{
		StartAt:         t,
		DurationMinutes: &durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestIsInstantBlocked(t *testing.T) {
	base := time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		start        time.Time
		duration     int
		reservations []*domain.Reservation
		want         bool
	}{
		{
			name:         "no reservations",
			start:        base,
			duration:     30,
			reservations: nil,
			want:         false,
		},
		{
			name:         "exact same window",
			start:        base,
			duration:     30,
			reservations: []*domain.Reservation{reservationAt(base, 30)},
			want:         true,
		},
		{
			name:     "slot starts inside a longer reservation",
			start:    base.Add(30 * time.Minute), // 10:30-11:00
			duration: 30,
			reservations: []*domain.Reservation{
				reservationAt(base, 45), // 10:00-10:45
			},
			want: true,
		},
		{
			name:     "slot starts right after a longer reservation ends",
			start:    base.Add(45 * time.Minute), // 10:45-11:15
			duration: 30,
			reservations: []*domain.Reservation{
				reservationAt(base, 45), // 10:00-10:45
			},
			want: false,
		},
		{
			name:     "back-to-back before is not an overlap",
			start:    base,
			duration: 30,
			reservations: []*domain.Reservation{
				reservationAt(base.Add(-30*time.Minute), 30), // 09:30-10:00
			},
			want: false,
		},
		{
			name:     "back-to-back after is not an overlap",
			start:    base,
			duration: 30,
			reservations: []*domain.Reservation{
				reservationAt(base.Add(30*time.Minute), 60), // 10:30-11:30
			},
			want: false,
		},
		{
			name:     "reservation fully inside the slot",
			start:    base,
			duration: 60,
			reservations: []*domain.Reservation{
				reservationAt(base.Add(15*time.Minute), 15),
			},
			want: true,
		},
		{
			name:     "cancelled reservation does not block",
			start:    base,
			duration: 30,
			reservations: []*domain.Reservation{
				{
					StartAt:         base,
					DurationMinutes: ptr.Ptr(30),
					Status:          domain.StatusCancelledByUser,
				},
			},
			want: false,
		},
		{
			name:     "nil duration blocks with the 30-minute default",
			start:    base.Add(25 * time.Minute),
			duration: 30,
			reservations: []*domain.Reservation{
				{StartAt: base, Status: domain.StatusConfirmed}, // 10:00-10:30 по умолчанию
			},
			want: true,
		},
		{
			name:     "nil duration does not block past the default end",
			start:    base.Add(30 * time.Minute),
			duration: 30,
			reservations: []*domain.Reservation{
				{StartAt: base, Status: domain.StatusConfirmed},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInstantBlocked(tt.start, tt.duration, tt.reservations)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "10:00", "12:00")}

	slots, err := GenerateSlots(2024, time.June, 3, schedule, menu30(0, 30), jst)
	require.NoError(t, err)
	require.Len(t, slots, 4) // 10:00 10:30 11:00 11:30 JST

	// Бронь 10:00 JST на 45 минут: занимает слоты 10:00 и 10:30,
	// но не 11:00 (10:45 заканчивается до его начала)
	reservations := []*domain.Reservation{
		reservationAt(time.Date(2024, time.June, 3, 1, 0, 0, 0, time.UTC), 45),
	}

	resolved := Resolve(slots, reservations)

	assert.False(t, resolved[0].Available, "10:00 blocked")
	assert.False(t, resolved[1].Available, "10:30 blocked by 45-minute overlap")
	assert.True(t, resolved[2].Available, "11:00 free")
	assert.True(t, resolved[3].Available, "11:30 free")

	// Исходный срез не мутируется
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}
