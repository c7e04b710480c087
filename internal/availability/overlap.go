package availability

import (
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

// IsInstantBlocked проверяет, занято ли время [startAt, startAt+duration)
// хотя бы одной активной бронью. Используется и при расчёте слотов, и при
// валидации новой брони перед вставкой.
//
// Пересечение полуоткрытых интервалов: слот [s, s+d) занят бронью [r, r+rd)
// тогда и только тогда, когда s < r+rd И s+d > r. Сравнивать на точное
// совпадение времени нельзя: длительности броней различаются, и брони
// разной длины встык не должны незаметно пересекаться.
//
// Граничащие интервалы пересечением не считаются:
// - слот 11:30-12:00, бронь 11:20-11:40 → занят (общий отрезок 11:30-11:40)
// - слот 11:30-12:00, бронь 11:00-11:30 → свободен (граничат)
// - слот 11:30-12:00, бронь 12:00-12:30 → свободен (граничат)
func IsInstantBlocked(startAt time.Time, durationMinutes int, reservations []*domain.Reservation) bool {
	endAt := startAt.Add(time.Duration(durationMinutes) * time.Minute)

	for _, r := range reservations {
		// Отменённые и no-show брони время не занимают
		if !r.IsActive() {
			continue
		}

		if r.StartAt.Before(endAt) && r.EndAt().After(startAt) {
			return true
		}
	}

	return false
}

// Resolve помечает занятые слоты по списку броней. Список броней должен быть
// заранее отфильтрован по области (FilterReservations) - резолвер предикатов
// области не знает.
func Resolve(slots []domain.TimeSlot, reservations []*domain.Reservation) []domain.TimeSlot {
	resolved := make([]domain.TimeSlot, len(slots))

	for i, slot := range slots {
		resolved[i] = slot
		duration := int(slot.EndAt.Sub(slot.StartAt) / time.Minute)
		if IsInstantBlocked(slot.StartAt, duration, reservations) {
			resolved[i].Available = false
		}
	}

	return resolved
}
