package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	appointmentRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/appointment"
)

// Service сервис жизненного цикла записи: чтение, отмена и смена статуса.
// Переходы статусов проверяются по доменной таблице переходов,
// проверка и обновление идут в одной транзакции.
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TxManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID возвращает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Appointments.GetByID: failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	return appt, nil
}

// GetProfessionalAppointments возвращает записи специалиста за период.
// По умолчанию cancelled и rescheduled записи скрыты; includeInactive
// возвращает полную историю.
func (s *Service) GetProfessionalAppointments(ctx context.Context, professionalID int64, from, to *time.Time, status *domain.AppointmentStatus, includeInactive bool) ([]*domain.Appointment, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID:  professionalID,
		StartDate:       from,
		EndDate:         to,
		Status:          status,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		s.logger.Error("Appointments.GetProfessionalAppointments: failed for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return appts, nil
}

// Cancel отменяет запись. Отменённая запись немедленно освобождает слот.
func (s *Service) Cancel(ctx context.Context, id int64, cancelledBy domain.CancelActor, reason *string) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var cancelled *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Статус проверяется по свежепрочитанной записи под блокировкой
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Appointments.Cancel: failed to get appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanBeCancelled() {
			s.logger.Warn("Appointments.Cancel: appointment id=%d in status %q cannot be cancelled", id, appt.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, appt.Status)
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, cancelledBy, reason); err != nil {
			s.logger.Error("Appointments.Cancel: failed to cancel appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusCancelled
		appt.CancelledBy = &cancelledBy
		appt.CancellationReason = reason
		cancelled = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointments.Cancel: appointment id=%d cancelled by %s", id, cancelledBy)
	return cancelled, nil
}

// UpdateStatus переводит запись в новый статус по таблице переходов.
// Статусы cancelled и rescheduled этим методом недостижимы: у отмены и
// переноса собственные операции с дополнительной семантикой.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if status == domain.StatusCancelled || status == domain.StatusRescheduled {
		return nil, fmt.Errorf("%w: %s", ErrStatusHasDedicatedFlow, status)
	}

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Appointments.UpdateStatus: failed to get appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if !appt.CanTransitionTo(status) {
			s.logger.Warn("Appointments.UpdateStatus: transition %q -> %q is not allowed for id=%d",
				appt.Status, status, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, status); err != nil {
			s.logger.Error("Appointments.UpdateStatus: failed to update appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		appt.Status = status
		updated = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointments.UpdateStatus: appointment id=%d moved to %s", id, status)
	return updated, nil
}
