package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

// civilInstant единственная точка конвертации местного времени в UTC.
// Вся арифметика генератора идёт в минутах местного времени, конвертация
// выполняется последним шагом, чтобы не накапливать смещение пояса.
func civilInstant(year int, month time.Month, day, minuteOfDay int, loc *time.Location) time.Time {
	return time.Date(year, month, day, minuteOfDay/60, minuteOfDay%60, 0, 0, loc).UTC()
}

// GenerateSlots генерирует кандидатов слотов на один календарный день.
// Все слоты помечены доступными - пересечения с бронями проверяются отдельно.
//
// Интервалы фильтруются по дню недели. Внутри интервала перебираются часы
// от часа открытия до часа закрытия и разрешённые меню стартовые минуты;
// кандидат принимается, если он начинается не раньше открытия и бронь
// длительностью menu.DurationMinutes целиком помещается до закрытия
// (слот, заканчивающийся ровно в закрытие, допустим).
//
// Дубликаты от пересекающихся интервалов одного дня не удаляются - ниже по
// потоку одинаковые инстанты схлопываются естественно.
func GenerateSlots(
	year int,
	month time.Month,
	day int,
	schedule domain.WeeklySchedule,
	menu *domain.ReservationMenu,
	loc *time.Location,
) ([]domain.TimeSlot, error) {
	if menu == nil {
		menu = domain.DefaultMenu()
	}

	weekday := time.Date(year, month, day, 0, 0, 0, 0, loc).Weekday()
	intervals := schedule.ForWeekday(weekday)
	if len(intervals) == 0 {
		// Нерабочий день
		return []domain.TimeSlot{}, nil
	}

	// Шаг 1: собираем стартовые минуты кандидатов в местном времени
	startMinutes := make([]int, 0)

	for _, interval := range intervals {
		openMin, err := interval.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		closeMin, err := interval.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		if openMin >= closeMin {
			return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidInterval, interval.StartTime, interval.EndTime)
		}

		for hour := openMin / 60; hour <= closeMin/60; hour++ {
			for _, minute := range menu.StartMinutes {
				candidate := hour*60 + minute
				if candidate < openMin {
					continue
				}
				// Бронь должна целиком помещаться до закрытия
				if candidate+menu.DurationMinutes > closeMin {
					continue
				}
				startMinutes = append(startMinutes, candidate)
			}
		}
	}

	// Шаг 2: сортируем по местному времени суток
	sort.Ints(startMinutes)

	// Шаг 3: конвертируем принятые местные времена в UTC инстанты
	slots := make([]domain.TimeSlot, len(startMinutes))
	for i, minuteOfDay := range startMinutes {
		startAt := civilInstant(year, month, day, minuteOfDay, loc)
		slots[i] = domain.TimeSlot{
			StartAt:   startAt,
			EndAt:     startAt.Add(time.Duration(menu.DurationMinutes) * time.Minute),
			Available: true,
		}
	}

	return slots, nil
}
