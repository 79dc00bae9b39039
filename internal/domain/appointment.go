package domain

import (
	"fmt"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusDraft слот удержан, но запись ещё не подтверждена.
	// Draft занимает слот наравне с подтверждённой записью (консервативная политика).
	StatusDraft       AppointmentStatus = "draft"
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusNoShow      AppointmentStatus = "no_show"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// CancelActor кто отменил запись
type CancelActor string

const (
	CancelledByClient       CancelActor = "client"
	CancelledByProfessional CancelActor = "professional"
)

// allowedTransitions таблица переходов статусов.
// Статусы, отсутствующие в таблице, терминальны: изменение запрещено,
// вместо редактирования используется reschedule/cancel/create-new.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusCancelled, StatusCompleted, StatusNoShow, StatusRescheduled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow, StatusRescheduled},
}

// Appointment represents a client appointment with a professional
type Appointment struct {
	ID              int64
	ProfessionalID  int64
	ServiceID       *int64 // NULL = запись без услуги, длительность по умолчанию
	AppointmentDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          AppointmentStatus

	// Denormalized service data for history
	ServiceName  *string
	ServicePrice *float64

	// Beneficiary info
	ClientName  string
	ClientPhone *string
	Notes       *string

	CancelledBy        *CancelActor
	CancellationReason *string
	CancelledAt        *time.Time

	// Reschedule chain: a rescheduled appointment is terminal and keeps a link
	// to its replacement history via RescheduledFromID on the NEW record.
	RescheduledFromID *int64
	RescheduledBy     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its slot.
// Cancelled and rescheduled records never block a slot again.
func (a *Appointment) IsBlocking() bool {
	return a.Status != StatusCancelled && a.Status != StatusRescheduled
}

// IsTerminal returns true if no further status transitions are allowed
func (a *Appointment) IsTerminal() bool {
	return len(allowedTransitions[a.Status]) == 0
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.CanTransitionTo(StatusCancelled)
}

// CanBeRescheduled returns true if the appointment can be rescheduled
func (a *Appointment) CanBeRescheduled() bool {
	return a.CanTransitionTo(StatusRescheduled)
}

// CanTransitionTo проверяет переход по таблице allowedTransitions
func (a *Appointment) CanTransitionTo(to AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[a.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusDraft, StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// ParseInitialStatus валидирует статус, допустимый при создании записи.
// Ручные записи персонала обычно стартуют confirmed, self-service тоже confirmed,
// draft используется для удержанных, но не подтверждённых слотов.
func ParseInitialStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusDraft, StatusPending, StatusConfirmed:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("status %q is not allowed as initial", s)
	}
}

// ParseCancelActor валидирует инициатора отмены
func ParseCancelActor(s string) (CancelActor, error) {
	switch CancelActor(s) {
	case CancelledByClient, CancelledByProfessional:
		return CancelActor(s), nil
	default:
		return "", fmt.Errorf("unknown cancel actor %q", s)
	}
}

// AppointmentsFilter фильтр для выборки записей специалиста
type AppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли cancelled/rescheduled записи
}
