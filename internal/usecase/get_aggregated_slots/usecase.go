package get_aggregated_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dshmn/ProBook-AvailabilityService/internal/availability"
	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/catalog"
	professionalRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/professional"
)

// UseCase use case объединённой сетки слотов нескольких специалистов
// для режима "запись к любому свободному".
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

// Execute выполняет use case объединённой сетки.
// Специалисты обрабатываются в порядке возрастания ID - при совпадении
// времени слот детерминированно достаётся специалисту с меньшим ID.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAggregatedSlots: professionals=%v, from=%s, to=%s",
		req.ProfessionalIDs, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAggregatedSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга (если указана) определяет длительность для всех специалистов
	var service *domain.Service
	if req.ServiceID != nil {
		var err error
		service, err = uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAggregatedSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAggregatedSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 3. Детерминированный порядок: по возрастанию ID, без дублей
	ids := uniqueSorted(req.ProfessionalIDs)

	// 4. Каждый специалист независимо проходит полный расчёт слотов
	allSlots := make([]domain.TimeSlot, 0)
	for _, id := range ids {
		slots, err := uc.computeForProfessional(ctx, id, req, service)
		if err != nil {
			return nil, err
		}
		allSlots = append(allSlots, slots...)
	}

	// 5. Объединяем: один представитель на каждую пару (дата, время)
	merged := availability.Aggregate(allSlots)

	uc.logger.Info("GetAggregatedSlots: merged %d slots across %d professionals",
		len(merged), len(ids))

	return &Response{
		From:  req.From,
		To:    req.To,
		Slots: toSlots(merged),
	}, nil
}

// computeForProfessional считает слоты одного специалиста в его таймзоне
func (uc *UseCase) computeForProfessional(ctx context.Context, id int64, req *Request, service *domain.Service) ([]domain.TimeSlot, error) {
	professional, err := uc.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAggregatedSlots: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAggregatedSlots: failed to get professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	loc, err := professional.Location()
	if err != nil {
		uc.logger.Error("GetAggregatedSlots: invalid timezone %q for professional id=%d: %v",
			professional.Timezone, id, err)
		return nil, fmt.Errorf("%w: invalid professional timezone: %v", ErrInternal, err)
	}
	now := uc.timeProvider.Now().In(loc)

	duration := professional.DefaultDurationMinutes
	if duration <= 0 {
		duration = domain.DefaultAppointmentDurationMinutes
	}
	buffer := domain.DefaultBufferMinutes
	if service != nil {
		duration = service.DurationMinutes
		buffer = service.BufferMinutes
	}

	schedule, err := uc.professionalRepo.GetWeeklySchedule(ctx, id)
	if err != nil {
		uc.logger.Error("GetAggregatedSlots: failed to get schedule for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	breaks, err := uc.professionalRepo.GetBreaks(ctx, id)
	if err != nil {
		uc.logger.Error("GetAggregatedSlots: failed to get breaks for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID: id,
		StartDate:      &req.From,
		EndDate:        &req.To,
	})
	if err != nil {
		uc.logger.Error("GetAggregatedSlots: failed to get appointments for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return availability.ComputeRange(availability.RangeInput{
		ProfessionalID:  id,
		From:            req.From,
		To:              req.To,
		Now:             now,
		Schedule:        schedule,
		Breaks:          breaks,
		Appointments:    appointments,
		DurationMinutes: duration,
		BufferMinutes:   buffer,
	}), nil
}

func uniqueSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func toSlots(merged []domain.AggregatedSlot) []Slot {
	slots := make([]Slot, 0, len(merged))
	for _, m := range merged {
		slots = append(slots, Slot{
			Date:                   m.Date,
			StartTime:              m.StartTime,
			EndTime:                m.EndTime,
			AssignedProfessionalID: m.ProfessionalID,
		})
	}
	return slots
}
