package tenantservice

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenantservice client: tenant not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден у тенанта
	ErrStaffNotFound = errors.New("tenantservice client: staff member not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tenantservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("tenantservice client: invalid response")
)
