package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

func TestForDay_EndToEnd(t *testing.T) {
	// Тенант открыт в понедельник 09:00-12:00, меню 30 минут по [0,30],
	// одна бронь на 10:00 длительностью 30 минут
	schedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "12:00")}
	reservations := []*domain.Reservation{
		reservationAt(time.Date(2024, time.June, 3, 1, 0, 0, 0, time.UTC), 30), // 10:00 JST
	}

	result, err := ForDay(2024, time.June, 3, schedule, menu30(0, 30), reservations, jst)
	require.NoError(t, err)

	assert.True(t, result.HasAvailability)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, jst), result.Date)
	require.Len(t, result.Slots, 6)

	wantAvailable := map[string]bool{
		"09:00": true,
		"09:30": true,
		"10:00": false,
		"10:30": true,
		"11:00": true,
		"11:30": true,
	}
	for _, slot := range result.Slots {
		local := slot.StartAt.In(jst).Format("15:04")
		assert.Equal(t, wantAvailable[local], slot.Available, "slot %s", local)
	}
}

func TestForDay_ClosedDay(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "12:00")}

	// 2024-06-04 - вторник, расписания нет
	result, err := ForDay(2024, time.June, 4, schedule, menu30(0, 30), nil, jst)
	require.NoError(t, err)

	assert.False(t, result.HasAvailability)
	assert.Empty(t, result.Slots)
}

func TestForDay_FullyBooked(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "10:00")}
	reservations := []*domain.Reservation{
		reservationAt(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), 60), // 09:00-10:00 JST
	}

	result, err := ForDay(2024, time.June, 3, schedule, menu30(0, 30), reservations, jst)
	require.NoError(t, err)

	assert.False(t, result.HasAvailability)
	require.Len(t, result.Slots, 2)
	for _, slot := range result.Slots {
		assert.False(t, slot.Available)
	}
}

func TestForDay_Idempotent(t *testing.T) {
	schedule := domain.WeeklySchedule{
		interval(time.Monday, "09:00", "12:00"),
		interval(time.Monday, "14:00", "18:00"),
	}
	reservations := []*domain.Reservation{
		reservationAt(time.Date(2024, time.June, 3, 1, 0, 0, 0, time.UTC), 45),
		reservationAt(time.Date(2024, time.June, 3, 6, 30, 0, 0, time.UTC), 30),
	}

	first, err := ForDay(2024, time.June, 3, schedule, menu30(0, 30), reservations, jst)
	require.NoError(t, err)
	second, err := ForDay(2024, time.June, 3, schedule, menu30(0, 30), reservations, jst)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
