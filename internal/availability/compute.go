package availability

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// RangeInput входные данные расчёта слотов для одного специалиста
// на диапазон дат. Все данные уже загружены - расчёт чистый, без I/O,
// безопасен для параллельного и повторного выполнения.
type RangeInput struct {
	ProfessionalID int64
	From           time.Time
	To             time.Time
	// Now текущее время в таймзоне специалиста
	Now time.Time
	// Schedule еженедельное расписание (все дни)
	Schedule []domain.WeeklyScheduleEntry
	// Breaks все еженедельные перерывы специалиста
	Breaks []domain.Break
	// Appointments записи за весь диапазон дат
	Appointments []*domain.Appointment
	// DurationMinutes длина слота (длительность услуги)
	DurationMinutes int
	// BufferMinutes пауза после услуги до начала следующего слота
	BufferMinutes int
	// ExcludeAppointmentID self-exclusion при переносе записи
	ExcludeAppointmentID *int64
}

// ComputeRange вычисляет доступные слоты по дням диапазона [From, To].
// Результат детерминирован и упорядочен по дате, затем по времени начала.
func ComputeRange(in RangeInput) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	for date := dateOnly(in.From); !date.After(dateOnly(in.To)); date = date.AddDate(0, 0, 1) {
		slots = append(slots, ComputeDay(in, date)...)
	}

	return slots
}

// ComputeDay вычисляет доступные слоты на одну civil-дату:
// рабочие часы -> кандидаты с фиксированным шагом -> фильтр конфликтов.
func ComputeDay(in RangeInput, date time.Time) []domain.TimeSlot {
	working := ResolveWorkingHours(in.Schedule, date)
	if working == nil {
		return nil
	}

	candidates := GenerateCandidates(*working, in.DurationMinutes, in.BufferMinutes)
	if len(candidates) == 0 {
		return nil
	}

	surviving := FilterConflicts(candidates, ConflictContext{
		Date:                 date,
		Now:                  in.Now,
		Breaks:               ResolveBreaks(in.Breaks, int(date.Weekday())),
		Appointments:         appointmentsOn(in.Appointments, date),
		ExcludeAppointmentID: in.ExcludeAppointmentID,
	})

	slots := make([]domain.TimeSlot, 0, len(surviving))
	for _, iv := range surviving {
		slots = append(slots, domain.TimeSlot{
			ProfessionalID: in.ProfessionalID,
			Date:           date,
			StartTime:      iv.Start,
			EndTime:        iv.End,
		})
	}

	return slots
}

// appointmentsOn отбирает записи на конкретную civil-дату
func appointmentsOn(appointments []*domain.Appointment, date time.Time) []*domain.Appointment {
	onDate := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if sameDay(a.AppointmentDate, date) {
			onDate = append(onDate, a)
		}
	}
	return onDate
}
