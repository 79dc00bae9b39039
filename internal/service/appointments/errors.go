package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrInvalidTransition возвращается, когда текущий статус записи
	// не допускает запрошенный переход
	ErrInvalidTransition = errors.New("appointments.service: status transition is not allowed")

	// ErrStatusHasDedicatedFlow возвращается для статусов cancelled и
	// rescheduled: они выставляются только отменой и переносом
	ErrStatusHasDedicatedFlow = errors.New("appointments.service: status is set by a dedicated operation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
