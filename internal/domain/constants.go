package domain

import "errors"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultCivilTimeZone       = "Asia/Tokyo"
)

// DefaultStartMinutes are the fallback slot-start offsets within an hour
var DefaultStartMinutes = []int{0, 30}

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNotesLength         = 500
	MaxCustomerNameLength  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Domain invariant errors
var (
	// ErrIntervalNotOrdered нарушение инварианта startTime < endTime
	ErrIntervalNotOrdered = errors.New("domain: interval start must be before end")

	// ErrInvalidMenuDuration длительность меню вне допустимого диапазона
	ErrInvalidMenuDuration = errors.New("domain: invalid menu duration")

	// ErrInvalidStartMinutes стартовые минуты меню вне [0,59] или не отсортированы
	ErrInvalidStartMinutes = errors.New("domain: invalid menu start minutes")
)

// InactiveStatuses список статусов, не блокирующих время
// Используется при подсчёте занятости слотов
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByTenant,
	StatusNoShow,
}

// ActiveStatuses список статусов, блокирующих время
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCompleted,
}
