package availability

import (
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

// ForDay считает доступность одного календарного дня: генерирует кандидатов,
// помечает занятые и сводит к флагу "есть хотя бы один свободный слот".
// Чистая функция - детерминирована на своих входах, без I/O.
func ForDay(
	year int,
	month time.Month,
	day int,
	schedule domain.WeeklySchedule,
	menu *domain.ReservationMenu,
	reservations []*domain.Reservation,
	loc *time.Location,
) (domain.DayAvailability, error) {
	slots, err := GenerateSlots(year, month, day, schedule, menu, loc)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	resolved := Resolve(slots, reservations)

	hasAvailability := false
	for _, slot := range resolved {
		if slot.Available {
			hasAvailability = true
			break
		}
	}

	return domain.DayAvailability{
		Date:            time.Date(year, month, day, 0, 0, 0, 0, loc),
		HasAvailability: hasAvailability,
		Slots:           resolved,
	}, nil
}
