package models

import (
	"errors"
	"time"

	"github.com/ktnb/ARS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	AdminID            int64  `json:"adminId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса брони
type UpdateStatusRequest struct {
	AdminID int64  `json:"adminId"`
	Status  string `json:"status"`
}

// GetTenantReservationsRequest запрос на получение броней тенанта
type GetTenantReservationsRequest struct {
	AdminID         int64      `json:"adminId"`
	TenantID        int64      `json:"tenantId"`
	StaffID         *int64     `json:"staffId,omitempty"`         // Фильтр по сотруднику (опционально)
	UnassignedOnly  bool       `json:"unassignedOnly,omitempty"`  // Только брони без сотрудника
	From            *time.Time `json:"from,omitempty"`            // Начало периода UTC (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода UTC (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTenantReservationsRequest) ToDomainFilter() (domain.TenantReservationsFilter, error) {
	filter := domain.TenantReservationsFilter{
		TenantID:        r.TenantID,
		StaffID:         r.StaffID,
		UnassignedOnly:  r.UnassignedOnly,
		StartAt:         r.From,
		EndAt:           r.To,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	TenantID           int64   `json:"tenantId"`
	StaffID            *int64  `json:"staffId,omitempty"`
	Datetime           string  `json:"datetime"` // ISO-8601 UTC, например "2025-10-15T01:00:00Z"
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	MenuName           string  `json:"menuName"`
	CustomerName       string  `json:"customerName"`
	CustomerEmail      *string `json:"customerEmail,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain бронь в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                 r.ID,
		TenantID:           r.TenantID,
		StaffID:            r.StaffID,
		Datetime:           r.StartAt.UTC().Format(time.RFC3339),
		DurationMinutes:    r.EffectiveDuration(),
		Status:             string(r.Status),
		MenuName:           r.MenuName,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		result[i] = FromDomainReservation(r)
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByTenant,
		domain.StatusNoShow:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
