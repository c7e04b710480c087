package get_monthly_availability

// Request модель запроса доступности на месяц
type Request struct {
	TenantID int64  // ID тенанта
	Year     int    // Год, например 2024
	Month    int    // Месяц, 1-12
	StaffID  *int64 // ID сотрудника, если календарь запрашивается для него
	Full     bool   // true - административная форма с разбивкой по сотрудникам
}

// Response модель ответа с календарем месяца
type Response struct {
	TenantID int64           `json:"tenantId"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Days     []Day           `json:"days"`
	Staff    []StaffCalendar `json:"staff"` // nil в публичной форме; в административной не nil, даже если сотрудников нет
}

// Day доступность одного календарного дня
type Day struct {
	Date            string `json:"date"` // "YYYY-MM-DD"
	HasAvailability bool   `json:"hasAvailability"`
}

// StaffCalendar календарь одного сотрудника
type StaffCalendar struct {
	StaffID int64 `json:"staffId"`
	Days    []Day `json:"days"`
}
