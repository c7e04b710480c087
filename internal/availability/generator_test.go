package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/types"
)

// jst фиксированный пояс +09:00 - в Японии нет перехода на летнее время
var jst = time.FixedZone("JST", 9*60*60)

func interval(day time.Weekday, start, end string) domain.BusinessHourInterval {
	return domain.BusinessHourInterval{
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func menu30(startMinutes ...int) *domain.ReservationMenu {
	return &domain.ReservationMenu{DurationMinutes: 30, StartMinutes: startMinutes}
}

func localTimes(t *testing.T, slots []domain.TimeSlot) []string {
	t.Helper()
	result := make([]string, len(slots))
	for i, slot := range slots {
		result[i] = slot.StartAt.In(jst).Format("15:04")
	}
	return result
}

func TestGenerateSlots(t *testing.T) {
	// 2024-06-03 - понедельник
	tests := []struct {
		name     string
		schedule domain.WeeklySchedule
		menu     *domain.ReservationMenu
		want     []string
	}{
		{
			name:     "morning interval, half-hour grid",
			schedule: domain.WeeklySchedule{interval(time.Monday, "09:00", "12:00")},
			menu:     menu30(0, 30),
			want:     []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "slot ending exactly at closing time is allowed",
			schedule: domain.WeeklySchedule{interval(time.Monday, "09:00", "10:00")},
			menu:     menu30(0, 30),
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "non-business day yields no slots",
			schedule: domain.WeeklySchedule{interval(time.Tuesday, "09:00", "12:00")},
			menu:     menu30(0, 30),
			want:     []string{},
		},
		{
			name: "split morning and evening hours",
			schedule: domain.WeeklySchedule{
				interval(time.Monday, "09:00", "10:00"),
				interval(time.Monday, "17:00", "18:00"),
			},
			menu: menu30(0, 30),
			want: []string{"09:00", "09:30", "17:00", "17:30"},
		},
		{
			name: "intervals stored out of order are sorted by time of day",
			schedule: domain.WeeklySchedule{
				interval(time.Monday, "15:00", "16:00"),
				interval(time.Monday, "09:00", "10:00"),
			},
			menu: menu30(0, 30),
			want: []string{"09:00", "09:30", "15:00", "15:30"},
		},
		{
			name:     "interval shorter than one duration block yields no slots",
			schedule: domain.WeeklySchedule{interval(time.Monday, "09:00", "09:20")},
			menu:     menu30(0, 30),
			want:     []string{},
		},
		{
			name:     "start minutes never aligning with the interval yield no slots",
			schedule: domain.WeeklySchedule{interval(time.Monday, "09:05", "09:25")},
			menu:     menu30(0, 30),
			want:     []string{},
		},
		{
			name:     "start offset inside the hour",
			schedule: domain.WeeklySchedule{interval(time.Monday, "09:05", "10:40")},
			menu:     &domain.ReservationMenu{DurationMinutes: 20, StartMinutes: []int{10, 40}},
			want:     []string{"09:10", "09:40", "10:10"},
		},
		{
			name:     "nil menu falls back to 30 minutes on the half hour",
			schedule: domain.WeeklySchedule{interval(time.Monday, "10:00", "11:00")},
			menu:     nil,
			want:     []string{"10:00", "10:30"},
		},
		{
			name: "overlapping intervals keep duplicate candidates",
			schedule: domain.WeeklySchedule{
				interval(time.Monday, "09:00", "10:00"),
				interval(time.Monday, "09:30", "10:30"),
			},
			menu: menu30(0, 30),
			want: []string{"09:00", "09:30", "09:30", "10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(2024, time.June, 3, tt.schedule, tt.menu, jst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, localTimes(t, slots))

			for _, slot := range slots {
				assert.True(t, slot.Available, "generated slots start available")
			}
		})
	}
}

func TestGenerateSlots_CivilToUTCConversion(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "18:00")}

	slots, err := GenerateSlots(2024, time.June, 3, schedule, menu30(0, 30), jst)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// 09:00 JST == 00:00 UTC того же календарного дня
	first := slots[0]
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), first.StartAt)
	assert.Equal(t, time.UTC, first.StartAt.Location())

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2024, time.June, 3, 8, 30, 0, 0, time.UTC), last.StartAt)
	assert.Equal(t, last.StartAt.Add(30*time.Minute), last.EndAt)
}

func TestGenerateSlots_DurationFromMenu(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "12:00")}
	menu := &domain.ReservationMenu{DurationMinutes: 90, StartMinutes: []int{0}}

	slots, err := GenerateSlots(2024, time.June, 3, schedule, menu, jst)
	require.NoError(t, err)

	// 11:00 + 90 минут вышло бы за закрытие
	assert.Equal(t, []string{"09:00", "10:00"}, localTimes(t, slots))
	for _, slot := range slots {
		assert.Equal(t, 90*time.Minute, slot.EndAt.Sub(slot.StartAt))
	}
}

func TestGenerateSlots_InvalidInterval(t *testing.T) {
	schedule := domain.WeeklySchedule{interval(time.Monday, "12:00", "09:00")}

	_, err := GenerateSlots(2024, time.June, 3, schedule, menu30(0, 30), jst)
	require.ErrorIs(t, err, ErrInvalidInterval)
}
