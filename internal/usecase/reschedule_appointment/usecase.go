package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/dshmn/ProBook-AvailabilityService/internal/availability"
	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	appointmentRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/appointment"
)

const pqSerializationFailure = "40001"

// UseCase use case переноса записи на другой слот.
// Перенос не редактирует запись: старая помечается rescheduled и остаётся
// в истории, на новый слот создаётся новая запись со ссылкой на старую.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case переноса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, newDate=%s, newStart=%s",
		req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = uc.reschedule(txCtx, req)
		return txErr
	})

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure {
			uc.logger.Warn("RescheduleAppointment: serialization conflict for appointment=%d", req.AppointmentID)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment %d rescheduled to new appointment %d",
		req.AppointmentID, created.ID)

	return &Response{Appointment: created}, nil
}

// reschedule выполняет перенос внутри транзакции: старая запись читается
// с блокировкой, новый слот перепроверяется с self-exclusion по старой записи.
func (uc *UseCase) reschedule(ctx context.Context, req *Request) (*domain.Appointment, error) {
	// Старая запись; внутри транзакции выборка идёт с FOR UPDATE
	old, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !old.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %q cannot be rescheduled",
			old.ID, old.Status)
		return nil, fmt.Errorf("%w: status %s", ErrInvalidTransition, old.Status)
	}

	professional, err := uc.professionalRepo.GetByID(ctx, old.ProfessionalID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get professional id=%d: %v", old.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	loc, err := professional.Location()
	if err != nil {
		uc.logger.Error("RescheduleAppointment: invalid timezone %q: %v", professional.Timezone, err)
		return nil, fmt.Errorf("%w: invalid professional timezone: %v", ErrInternal, err)
	}
	now := uc.timeProvider.Now().In(loc)

	// Длительность сохраняется от старой записи: перенос не меняет услугу
	duration := durationOf(old)

	slot, err := availability.NewInterval(req.NewStartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}

	if availability.SlotInPast(req.NewDate, slot.Start, now) {
		return nil, ErrSlotInPast
	}

	schedule, err := uc.professionalRepo.GetWeeklySchedule(ctx, old.ProfessionalID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	working := availability.ResolveWorkingHours(schedule, req.NewDate)
	if working == nil {
		return nil, ErrProfessionalClosed
	}
	if !working.Contains(slot) {
		return nil, ErrOutsideWorkingHours
	}

	breaks, err := uc.professionalRepo.GetBreaks(ctx, old.ProfessionalID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get breaks: %v", err)
		return nil, fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
	}
	dayBreaks := availability.ResolveBreaks(breaks, int(req.NewDate.Weekday()))

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID: old.ProfessionalID,
		StartDate:      &req.NewDate,
		EndDate:        &req.NewDate,
	})
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// Self-exclusion: собственный слот старой записи не считается конфликтом,
	// перенос на то же время допустим
	if availability.IntervalBlocked(slot, dayBreaks, appointments, &old.ID) {
		return nil, ErrSlotConflict
	}

	if err := uc.appointmentRepo.MarkRescheduled(ctx, old.ID, req.RescheduledBy); err != nil {
		uc.logger.Error("RescheduleAppointment: failed to mark appointment id=%d rescheduled: %v", old.ID, err)
		return nil, fmt.Errorf("%w: failed to mark rescheduled: %v", ErrInternal, err)
	}

	// Новая запись наследует услугу, клиента и заметки старой
	newAppt := &domain.Appointment{
		ProfessionalID:    old.ProfessionalID,
		ServiceID:         old.ServiceID,
		AppointmentDate:   req.NewDate,
		StartTime:         slot.Start,
		EndTime:           slot.End,
		Status:            domain.StatusConfirmed,
		ServiceName:       old.ServiceName,
		ServicePrice:      old.ServicePrice,
		ClientName:        old.ClientName,
		ClientPhone:       old.ClientPhone,
		Notes:             old.Notes,
		RescheduledFromID: &old.ID,
		RescheduledBy:     &req.RescheduledBy,
	}

	created, err := uc.appointmentRepo.Create(ctx, newAppt)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to create new appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	return created, nil
}

// durationOf вычисляет длительность записи по её границам
func durationOf(a *domain.Appointment) int {
	return a.EndTime.Minutes() - a.StartTime.Minutes()
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.RescheduledBy) == "" {
		return fmt.Errorf("%w: rescheduledBy is required", ErrInvalidInput)
	}

	return nil
}
