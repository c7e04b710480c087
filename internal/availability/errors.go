package availability

import "errors"

var (
	// ErrInvalidYear возвращается при некорректном годе запроса
	ErrInvalidYear = errors.New("availability: invalid year")

	// ErrInvalidMonth возвращается, когда месяц вне диапазона 1-12
	ErrInvalidMonth = errors.New("availability: invalid month")

	// ErrInvalidInterval возвращается при некорректном интервале рабочих часов
	// (по контракту интервалы валидируются при записи, эта ошибка означает
	// повреждённые данные)
	ErrInvalidInterval = errors.New("availability: invalid business hour interval")
)
