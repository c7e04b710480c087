package menu

import "errors"

var (
	// ErrMenuNotFound возвращается, когда меню тенанта не настроено
	ErrMenuNotFound = errors.New("menu.repository: menu not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("menu.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("menu.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("menu.repository: failed to scan row")
)
