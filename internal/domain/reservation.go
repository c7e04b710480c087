package domain

import (
	"time"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed         ReservationStatus = "confirmed"
	StatusCompleted         ReservationStatus = "completed"
	StatusCancelledByUser   ReservationStatus = "cancelled_by_user"
	StatusCancelledByTenant ReservationStatus = "cancelled_by_tenant"
	StatusNoShow            ReservationStatus = "no_show"
)

// Reservation represents an existing commitment that blocks time.
// StartAt is an absolute UTC instant; the civil time zone is a computation
// detail of slot generation and never stored here.
type Reservation struct {
	ID       int64
	TenantID int64
	StaffID  *int64 // nil = not assigned to a specific staff member

	StartAt         time.Time
	DurationMinutes *int // nil = DefaultSlotDurationMinutes
	Status          ReservationStatus

	// Denormalized data for history
	MenuName      string
	CustomerName  string
	CustomerEmail *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDuration returns the blocking duration in minutes,
// falling back to the default when the stored value is missing
func (r *Reservation) EffectiveDuration() int {
	if r.DurationMinutes == nil || *r.DurationMinutes <= 0 {
		return DefaultSlotDurationMinutes
	}
	return *r.DurationMinutes
}

// EndAt returns the UTC instant at which the reservation stops blocking time
func (r *Reservation) EndAt() time.Time {
	return r.StartAt.Add(time.Duration(r.EffectiveDuration()) * time.Minute)
}

// IsActive returns true if the reservation still blocks its time range
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelledByUser &&
		r.Status != StatusCancelledByTenant &&
		r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByUser || r.Status == StatusCancelledByTenant
}

// TenantReservationsFilter фильтр для получения бронирований тенанта
type TenantReservationsFilter struct {
	TenantID        int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по сотруднику (опционально)
	UnassignedOnly  bool               // Только брони без сотрудника
	StartAt         *time.Time         // Начало периода UTC (опционально)
	EndAt           *time.Time         // Конец периода UTC (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и no-show
}
