package get_daily_slots

import "time"

// Request модель запроса на получение слотов одного дня
type Request struct {
	TenantID   int64     // ID тенанта
	Date       time.Time // Календарная дата в часовом поясе тенанта (без времени)
	StaffID    *int64    // ID сотрудника, если слоты запрашиваются для конкретного сотрудника
	Unassigned bool      // true - слоты только для броней без сотрудника
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date     string `json:"date"` // Дата в формате "YYYY-MM-DD"
	TenantID int64  `json:"tenantId"`
	StaffID  *int64 `json:"staffId,omitempty"`
	Slots    []Slot `json:"slots"`
}

// Slot один слот дня
type Slot struct {
	Datetime string `json:"datetime"` // Начало слота, ISO-8601 в UTC
	IsBooked bool   `json:"is_booked"`
}
