package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshmn/ProBook-AvailabilityService/internal/availability"
	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/catalog"
	professionalRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/professional"
)

// UseCase use case расчёта доступных слотов одного специалиста.
// Слоты считаются заново на каждый запрос и никогда не кешируются:
// записи и перерывы могут измениться между запросами.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case расчёта доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, from=%s, to=%s",
		req.ProfessionalID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем специалиста (таймзона, длительность по умолчанию)
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. "Сейчас" в таймзоне специалиста - явный параметр расчёта,
	// а не ambient-чтение системных часов
	loc, err := professional.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid timezone %q for professional id=%d: %v",
			professional.Timezone, professional.ID, err)
		return nil, fmt.Errorf("%w: invalid professional timezone: %v", ErrInternal, err)
	}
	now := uc.timeProvider.Now().In(loc)

	// 4. Определяем длительность слота
	var service *domain.Service
	if req.ServiceID != nil {
		service, err = uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		// Услуга другого специалиста недоступна для этой сетки
		if service.ProfessionalID != req.ProfessionalID {
			uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to professional id=%d",
				*req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
	}

	duration, buffer, err := resolveDuration(service, professional)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: duration resolution failed: %v", err)
		return nil, err
	}

	// 5. Загружаем расписание, перерывы и записи за диапазон
	schedule, err := uc.professionalRepo.GetWeeklySchedule(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	breaks, err := uc.professionalRepo.GetBreaks(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get breaks: %v", err)
		return nil, fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID: req.ProfessionalID,
		StartDate:      &req.From,
		EndDate:        &req.To,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Чистый расчёт слотов
	slots := availability.ComputeRange(availability.RangeInput{
		ProfessionalID:       req.ProfessionalID,
		From:                 req.From,
		To:                   req.To,
		Now:                  now,
		Schedule:             schedule,
		Breaks:               breaks,
		Appointments:         appointments,
		DurationMinutes:      duration,
		BufferMinutes:        buffer,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})

	uc.logger.Info("GetAvailableSlots: computed %d slots for professional=%d",
		len(slots), req.ProfessionalID)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		From:           req.From,
		To:             req.To,
		Slots:          toSlots(slots, duration),
	}, nil
}

func toSlots(computed []domain.TimeSlot, duration int) []Slot {
	slots := make([]Slot, 0, len(computed))
	for _, s := range computed {
		slots = append(slots, Slot{
			Date:            s.Date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: duration,
		})
	}
	return slots
}
