package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/ptr"
)

func TestForMonth_DayEnumeration(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		wantDays int
	}{
		{"leap february", 2024, 2, 29},
		{"non-leap february", 2023, 2, 28},
		{"thirty-one days", 2024, 1, 31},
		{"thirty days", 2024, 4, 30},
		{"december month-end boundary", 2024, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ForMonth(tt.year, tt.month, nil, nil, nil, nil, nil, jst)
			require.NoError(t, err)

			require.Len(t, result.Days, tt.wantDays)
			assert.Equal(t, 1, result.Days[0].Date.Day())
			assert.Equal(t, tt.wantDays, result.Days[len(result.Days)-1].Date.Day())
			for _, day := range result.Days {
				assert.Equal(t, time.Month(tt.month), day.Date.Month())
			}
		})
	}
}

func TestForMonth_InvalidInput(t *testing.T) {
	_, err := ForMonth(2024, 0, nil, nil, nil, nil, nil, jst)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = ForMonth(2024, 13, nil, nil, nil, nil, nil, jst)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = ForMonth(0, 6, nil, nil, nil, nil, nil, jst)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestForMonth_TenantAndStaffScopes(t *testing.T) {
	tenantSchedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "12:00")}
	staffSchedules := map[int64]domain.WeeklySchedule{
		// Сотрудник 7 работает только часть понедельника (подмножество часов
		// тенанта), у сотрудника 8 расписание не настроено вовсе
		7: {interval(time.Monday, "09:00", "10:00")},
	}

	result, err := ForMonth(2024, 6, tenantSchedule, staffSchedules, []int64{7, 8}, menu30(0, 30), nil, jst)
	require.NoError(t, err)

	// Июнь 2024: понедельники 3, 10, 17, 24
	monday := result.Days[2] // 3 июня
	assert.True(t, monday.HasAvailability)
	assert.Len(t, monday.Slots, 6)

	tuesday := result.Days[3]
	assert.False(t, tuesday.HasAvailability)

	require.Len(t, result.Staff, 2)

	staff7 := result.Staff[0]
	assert.Equal(t, int64(7), staff7.StaffID)
	assert.True(t, staff7.Days[2].HasAvailability)
	assert.Len(t, staff7.Days[2].Slots, 2, "staff hours narrower than tenant hours")

	// Отсутствие интервалов у сотрудника - день закрыт, часы тенанта
	// не наследуются
	staff8 := result.Staff[1]
	assert.Equal(t, int64(8), staff8.StaffID)
	for _, day := range staff8.Days {
		assert.False(t, day.HasAvailability)
		assert.Empty(t, day.Slots)
	}
}

func TestForMonth_ReservationScopeFiltering(t *testing.T) {
	tenantSchedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "10:00")}
	staffSchedules := map[int64]domain.WeeklySchedule{
		7: {interval(time.Monday, "09:00", "10:00")},
	}

	// Бронь сотрудника 7 на 09:00 JST 3 июня
	reservations := []*domain.Reservation{
		{
			StartAt:         time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
			DurationMinutes: ptr.Ptr(30),
			StaffID:         ptr.Ptr(int64(7)),
			Status:          domain.StatusConfirmed,
		},
	}

	result, err := ForMonth(2024, 6, tenantSchedule, staffSchedules, []int64{7}, menu30(0, 30), reservations, jst)
	require.NoError(t, err)

	// В области тенанта бронь занимает время
	monday := result.Days[2]
	assert.False(t, monday.Slots[0].Available)
	assert.True(t, monday.Slots[1].Available)

	// В области сотрудника 7 тоже
	staff7 := result.Staff[0]
	assert.False(t, staff7.Days[2].Slots[0].Available)
	assert.True(t, staff7.Days[2].Slots[1].Available)
}

func TestForMonth_MidnightSpanningReservation(t *testing.T) {
	// Тенант открыт ежедневно 00:00-01:00 местного времени; бронь начинается
	// 23:50 2 июня JST и длится 30 минут - должна занять слот 00:00 3 июня
	schedule := domain.WeeklySchedule{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		schedule = append(schedule, interval(d, "00:00", "01:00"))
	}

	reservations := []*domain.Reservation{
		reservationAt(time.Date(2024, time.June, 2, 14, 50, 0, 0, time.UTC), 30), // 23:50 JST
	}

	result, err := ForMonth(2024, 6, schedule, nil, nil, menu30(0, 30), reservations, jst)
	require.NoError(t, err)

	day3 := result.Days[2]
	require.Len(t, day3.Slots, 2)
	assert.False(t, day3.Slots[0].Available, "00:00 blocked by reservation spilling over midnight")
	assert.True(t, day3.Slots[1].Available)
}

func TestResolveIntervals(t *testing.T) {
	tenantSchedule := domain.WeeklySchedule{interval(time.Monday, "09:00", "18:00")}
	staffSchedules := map[int64]domain.WeeklySchedule{
		7: {interval(time.Monday, "10:00", "15:00")},
	}

	assert.Equal(t, tenantSchedule, ResolveIntervals(TenantScope(), tenantSchedule, staffSchedules))
	assert.Equal(t, tenantSchedule, ResolveIntervals(UnassignedScope(), tenantSchedule, staffSchedules))
	assert.Equal(t, staffSchedules[7], ResolveIntervals(StaffScope(7), tenantSchedule, staffSchedules))
	assert.Nil(t, ResolveIntervals(StaffScope(99), tenantSchedule, staffSchedules))
}

func TestFilterReservations(t *testing.T) {
	unassigned := &domain.Reservation{Status: domain.StatusConfirmed}
	forStaff7 := &domain.Reservation{StaffID: ptr.Ptr(int64(7)), Status: domain.StatusConfirmed}
	forStaff8 := &domain.Reservation{StaffID: ptr.Ptr(int64(8)), Status: domain.StatusConfirmed}
	all := []*domain.Reservation{unassigned, forStaff7, forStaff8}

	assert.Equal(t, all, FilterReservations(TenantScope(), all))
	assert.Equal(t, []*domain.Reservation{unassigned}, FilterReservations(UnassignedScope(), all))
	assert.Equal(t, []*domain.Reservation{forStaff7}, FilterReservations(StaffScope(7), all))
	assert.Empty(t, FilterReservations(StaffScope(99), all))
}
