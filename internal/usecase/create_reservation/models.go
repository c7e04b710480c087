package create_reservation

import "time"

// Request модель запроса на создание брони
type Request struct {
	TenantID      int64     // ID тенанта
	StaffID       *int64    // ID сотрудника (nil - бронь без закрепления)
	StartAt       time.Time // Запрошенное начало, абсолютный момент UTC
	CustomerName  string    // Имя клиента
	CustomerEmail *string   // Email клиента (опционально)
	Notes         *string   // Заметки (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenantId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	Datetime        string  `json:"datetime"` // Начало брони, ISO-8601 в UTC
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MenuName        string  `json:"menuName,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}
