package get_aggregated_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда один из специалистов не найден
	ErrProfessionalNotFound = errors.New("get_aggregated_slots: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_aggregated_slots: service not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_aggregated_slots: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_aggregated_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_aggregated_slots: internal error")
)
