package create_reservation

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден у тенанта
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrDateInPast возвращается, когда запрошенное время уже прошло
	ErrDateInPast = errors.New("requested time is in the past")

	// ErrOutsideBusinessHours возвращается, когда запрошенное время не
	// совпадает ни с одним слотом рабочего дня
	ErrOutsideBusinessHours = errors.New("requested time is outside business hours")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другой бронью
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
