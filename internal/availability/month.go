package availability

import (
	"fmt"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

// ForMonth считает доступность каждого календарного дня месяца для тенанта
// и для каждого запрошенного сотрудника.
//
// Брони ожидаются выбранными на весь месяц одним запросом; функция сама
// раскладывает их по дням (O(1) амортизированный доступ на день), поэтому
// вызовов агрегатора ровно дни × области без повторных выборок.
//
// Некорректный год или месяц - ошибка вызывающего, сигнализируется до начала
// агрегации, частичный результат не возвращается.
func ForMonth(
	year int,
	month int,
	tenantSchedule domain.WeeklySchedule,
	staffSchedules map[int64]domain.WeeklySchedule,
	staffIDs []int64,
	menu *domain.ReservationMenu,
	reservations []*domain.Reservation,
	loc *time.Location,
) (*domain.MonthlyAvailability, error) {
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	targetMonth := time.Month(month)

	// Последний день месяца: нулевой день следующего месяца
	daysInMonth := time.Date(year, targetMonth+1, 0, 0, 0, 0, 0, loc).Day()

	// Раскладываем брони по дням месяца в местном времени. Бронь попадает
	// в корзины и дня начала, и дня конца: бронь у полуночи может занимать
	// утренние слоты следующего дня.
	buckets := make(map[int][]*domain.Reservation, daysInMonth)
	addToBucket := func(t time.Time, r *domain.Reservation) {
		local := t.In(loc)
		if local.Year() != year || local.Month() != targetMonth {
			return
		}
		day := local.Day()
		if n := len(buckets[day]); n > 0 && buckets[day][n-1] == r {
			return
		}
		buckets[day] = append(buckets[day], r)
	}
	for _, r := range reservations {
		addToBucket(r.StartAt, r)
		addToBucket(r.EndAt(), r)
	}

	result := &domain.MonthlyAvailability{
		Year:  year,
		Month: targetMonth,
		Days:  make([]domain.DayAvailability, 0, daysInMonth),
		Staff: make([]domain.StaffAvailability, 0, len(staffIDs)),
	}

	// Область тенанта
	for day := 1; day <= daysInMonth; day++ {
		dayReservations := FilterReservations(TenantScope(), buckets[day])
		availability, err := ForDay(year, targetMonth, day, tenantSchedule, menu, dayReservations, loc)
		if err != nil {
			return nil, err
		}
		result.Days = append(result.Days, availability)
	}

	// Области сотрудников
	for _, staffID := range staffIDs {
		scope := StaffScope(staffID)
		schedule := ResolveIntervals(scope, tenantSchedule, staffSchedules)

		staffResult := domain.StaffAvailability{
			StaffID: staffID,
			Days:    make([]domain.DayAvailability, 0, daysInMonth),
		}

		for day := 1; day <= daysInMonth; day++ {
			dayReservations := FilterReservations(scope, buckets[day])
			availability, err := ForDay(year, targetMonth, day, schedule, menu, dayReservations, loc)
			if err != nil {
				return nil, err
			}
			staffResult.Days = append(staffResult.Days, availability)
		}

		result.Staff = append(result.Staff, staffResult)
	}

	return result, nil
}
