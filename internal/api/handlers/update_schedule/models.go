package update_schedule

import (
	"github.com/ktnb/ARS-ReservationService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model.
// Все секции опциональны: присутствующие заменяют соответствующую
// часть расписания целиком
type UpdateScheduleRequest struct {
	BusinessHours *[]IntervalPayload `json:"businessHours,omitempty"`
	Staff         []StaffPayload     `json:"staff,omitempty"`
	Menu          *MenuPayload       `json:"menu,omitempty"`
}

// IntervalPayload один интервал рабочих часов
type IntervalPayload struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// StaffPayload рабочие часы одного сотрудника
type StaffPayload struct {
	StaffID       int64             `json:"staffId"`
	BusinessHours []IntervalPayload `json:"businessHours"`
}

// MenuPayload меню тенанта
type MenuPayload struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	StartMinutes    []int  `json:"startMinutes"`
}

func toServiceIntervals(payload []IntervalPayload) []models.IntervalPayload {
	result := make([]models.IntervalPayload, len(payload))
	for i, p := range payload {
		result[i] = models.IntervalPayload{
			DayOfWeek: p.DayOfWeek,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		}
	}
	return result
}
