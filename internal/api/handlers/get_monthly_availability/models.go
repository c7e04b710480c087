package get_monthly_availability

import (
	getMonthlyAvailability "github.com/ktnb/ARS-ReservationService/internal/usecase/get_monthly_availability"
)

// MonthlyAvailabilityResponse HTTP response model.
// Staff сериализуется указателем: в публичной форме ключа нет вовсе,
// в административной он присутствует всегда, пустым списком в том числе
type MonthlyAvailabilityResponse struct {
	TenantID int64            `json:"tenantId"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Days     []Day            `json:"days"`
	Staff    *[]StaffCalendar `json:"staff,omitempty"`
}

// Day доступность одного календарного дня
type Day struct {
	Date            string `json:"date"`
	HasAvailability bool   `json:"hasAvailability"`
}

// StaffCalendar календарь одного сотрудника
type StaffCalendar struct {
	StaffID int64 `json:"staffId"`
	Days    []Day `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthlyAvailability.Response) *MonthlyAvailabilityResponse {
	result := &MonthlyAvailabilityResponse{
		TenantID: resp.TenantID,
		Year:     resp.Year,
		Month:    resp.Month,
		Days:     toDays(resp.Days),
	}

	if resp.Staff != nil {
		staff := make([]StaffCalendar, len(resp.Staff))
		for i, s := range resp.Staff {
			staff[i] = StaffCalendar{
				StaffID: s.StaffID,
				Days:    toDays(s.Days),
			}
		}
		result.Staff = &staff
	}

	return result
}

func toDays(days []getMonthlyAvailability.Day) []Day {
	result := make([]Day, len(days))
	for i, day := range days {
		result[i] = Day{Date: day.Date, HasAvailability: day.HasAvailability}
	}
	return result
}
