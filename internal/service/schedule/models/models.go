package models

import (
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
	"github.com/ktnb/ARS-ReservationService/pkg/types"
)

// Request модели

// IntervalPayload один интервал рабочих часов в местном времени тенанта
type IntervalPayload struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// ToDomainInterval конвертирует payload в domain интервал
func (p IntervalPayload) ToDomainInterval() domain.BusinessHourInterval {
	return domain.BusinessHourInterval{
		DayOfWeek: time.Weekday(p.DayOfWeek),
		StartTime: types.TimeString(p.StartTime),
		EndTime:   types.TimeString(p.EndTime),
	}
}

// UpdateTenantHoursRequest запрос на замену рабочих часов тенанта
type UpdateTenantHoursRequest struct {
	AdminID       int64             `json:"adminId"`
	TenantID      int64             `json:"tenantId"`
	BusinessHours []IntervalPayload `json:"businessHours"`
}

// UpdateStaffHoursRequest запрос на замену рабочих часов сотрудника
type UpdateStaffHoursRequest struct {
	AdminID       int64             `json:"adminId"`
	TenantID      int64             `json:"tenantId"`
	StaffID       int64             `json:"staffId"`
	BusinessHours []IntervalPayload `json:"businessHours"`
}

// UpdateMenuRequest запрос на изменение меню тенанта
type UpdateMenuRequest struct {
	AdminID         int64  `json:"adminId"`
	TenantID        int64  `json:"tenantId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	StartMinutes    []int  `json:"startMinutes"`
}

// ToDomainMenu конвертирует запрос в domain меню
func (r *UpdateMenuRequest) ToDomainMenu() *domain.ReservationMenu {
	return &domain.ReservationMenu{
		TenantID:        r.TenantID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		StartMinutes:    r.StartMinutes,
	}
}

// Response модели

// MenuPayload меню тенанта
type MenuPayload struct {
	Name            string `json:"name,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	StartMinutes    []int  `json:"startMinutes"`
	IsDefault       bool   `json:"isDefault"` // true, если меню не настроено и применено умолчание
}

// StaffHoursPayload рабочие часы одного сотрудника
type StaffHoursPayload struct {
	StaffID       int64             `json:"staffId"`
	BusinessHours []IntervalPayload `json:"businessHours"`
}

// ScheduleResponse полное расписание тенанта
type ScheduleResponse struct {
	TenantID      int64               `json:"tenantId"`
	BusinessHours []IntervalPayload   `json:"businessHours"`
	Staff         []StaffHoursPayload `json:"staff"`
	Menu          MenuPayload         `json:"menu"`
}

// FromDomainSchedule конвертирует domain расписание в payload
func FromDomainSchedule(schedule domain.WeeklySchedule) []IntervalPayload {
	result := make([]IntervalPayload, len(schedule))
	for i, interval := range schedule {
		result[i] = IntervalPayload{
			DayOfWeek: int(interval.DayOfWeek),
			StartTime: interval.StartTime.String(),
			EndTime:   interval.EndTime.String(),
		}
	}
	return result
}

// FromDomainMenu конвертирует domain меню в payload
func FromDomainMenu(menu *domain.ReservationMenu, isDefault bool) MenuPayload {
	return MenuPayload{
		Name:            menu.Name,
		DurationMinutes: menu.DurationMinutes,
		StartMinutes:    menu.StartMinutes,
		IsDefault:       isDefault,
	}
}
