package schedule

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден у тенанта
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInterval возвращается при некорректном интервале рабочих часов
	ErrInvalidInterval = errors.New("invalid business hour interval")

	// ErrOverlappingIntervals возвращается, когда интервалы одного дня пересекаются
	ErrOverlappingIntervals = errors.New("overlapping business hour intervals")

	// ErrStaffHoursNotSubset возвращается, когда часы сотрудника выходят
	// за рабочие часы тенанта
	ErrStaffHoursNotSubset = errors.New("staff hours must lie within tenant business hours")

	// ErrInvalidMenu возвращается при некорректной конфигурации меню
	ErrInvalidMenu = errors.New("invalid reservation menu")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
