package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда переносимая запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrInvalidTransition возвращается, когда статус записи не допускает перенос
	ErrInvalidTransition = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrSlotConflict возвращается, когда новый слот уже занят
	ErrSlotConflict = errors.New("reschedule_appointment: slot is no longer available")

	// ErrOutsideWorkingHours возвращается, когда новый слот не помещается
	// в рабочие часы даты
	ErrOutsideWorkingHours = errors.New("reschedule_appointment: slot is outside working hours")

	// ErrProfessionalClosed возвращается, когда на новую дату нет рабочих часов
	ErrProfessionalClosed = errors.New("reschedule_appointment: professional is not working on this date")

	// ErrSlotInPast возвращается при попытке переноса на прошедшее время
	ErrSlotInPast = errors.New("reschedule_appointment: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
