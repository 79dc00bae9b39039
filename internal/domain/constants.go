package domain

// Default configuration values
const (
	DefaultAppointmentDurationMinutes = 30
	DefaultBufferMinutes              = 0
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 120

	// MaxSlotRangeDays максимальная длина диапазона дат в одном запросе слотов
	MaxSlotRangeDays = 92

	// MaxAggregatedProfessionals максимальное число специалистов в режиме "любой свободный"
	MaxAggregatedProfessionals = 25

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Day-of-week convention: 0=Sunday .. 6=Saturday,
// единая для расписаний, перерывов и записей
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// NonBlockingStatuses статусы, которые НЕ занимают слот.
// Используются при фильтрации записей для расчёта доступности.
var NonBlockingStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusRescheduled,
}

// BlockingStatuses статусы, занимающие слот в календаре
var BlockingStatuses = []AppointmentStatus{
	StatusDraft,
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
