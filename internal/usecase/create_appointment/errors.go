package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или
	// принадлежит другому специалисту
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotConflict возвращается, когда запрошенный слот уже занят
	// записью или перерывом
	ErrSlotConflict = errors.New("create_appointment: slot is no longer available")

	// ErrOutsideWorkingHours возвращается, когда запись не помещается
	// в рабочие часы даты
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrProfessionalClosed возвращается, когда на дату нет рабочих часов
	ErrProfessionalClosed = errors.New("create_appointment: professional is not working on this date")

	// ErrSlotInPast возвращается при попытке записи на прошедшее время
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
