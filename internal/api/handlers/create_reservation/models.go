package create_reservation

import (
	"time"

	createReservation "github.com/ktnb/ARS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TenantID      int64   `json:"tenantId"`
	StaffID       *int64  `json:"staffId,omitempty"`
	Datetime      string  `json:"datetime"` // Начало брони, ISO-8601
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.Datetime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		TenantID:      r.TenantID,
		StaffID:       r.StaffID,
		StartAt:       startAt.UTC(),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
	}, nil
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	TenantID        int64   `json:"tenantId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	Datetime        string  `json:"datetime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MenuName        string  `json:"menuName,omitempty"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		TenantID:        resp.TenantID,
		StaffID:         resp.StaffID,
		Datetime:        resp.Datetime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		MenuName:        resp.MenuName,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
	}
}
