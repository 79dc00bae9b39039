package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/dshmn/ProBook-AvailabilityService/internal/availability"
	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/catalog"
	professionalRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/professional"
)

// serialization_failure: SERIALIZABLE-транзакция не смогла закоммититься
// из-за конкурирующего бронирования
const pqSerializationFailure = "40001"

// UseCase use case создания записи на приём.
// Сетка слотов, показанная клиенту, устаревает в момент показа, поэтому
// доступность перепроверяется заново внутри SERIALIZABLE-транзакции
// непосредственно перед вставкой.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%d, date=%s, start=%s",
		req.ProfessionalID, req.AppointmentDate.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Специалист: таймзона и длительность по умолчанию
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	loc, err := professional.Location()
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid timezone %q for professional id=%d: %v",
			professional.Timezone, professional.ID, err)
		return nil, fmt.Errorf("%w: invalid professional timezone: %v", ErrInternal, err)
	}
	now := uc.timeProvider.Now().In(loc)

	// 3. Услуга и длительность записи
	var service *domain.Service
	if req.ServiceID != nil {
		service, err = uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.ProfessionalID != req.ProfessionalID {
			uc.logger.Warn("CreateAppointment: service id=%d does not belong to professional id=%d",
				*req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
	}

	duration := professional.DefaultDurationMinutes
	if duration <= 0 {
		duration = domain.DefaultAppointmentDurationMinutes
	}
	if service != nil {
		duration = service.DurationMinutes
	}

	// 4. Проверка доступности и вставка атомарны: SERIALIZABLE плюс
	// FOR UPDATE на записях даты закрывают гонку двойного бронирования
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = uc.createValidated(txCtx, req, service, duration, now)
		return txErr
	})

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqSerializationFailure {
			uc.logger.Warn("CreateAppointment: serialization conflict for professional=%d date=%s start=%s",
				req.ProfessionalID, req.AppointmentDate.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for professional=%d",
		created.ID, created.ProfessionalID)

	return &Response{Appointment: created}, nil
}

// createValidated выполняет commit-time проверку слота и вставку.
// Вызывается строго внутри транзакции.
func (uc *UseCase) createValidated(ctx context.Context, req *Request, service *domain.Service, duration int, now time.Time) (*domain.Appointment, error) {
	// Слот как интервал [start, start+duration)
	slot, err := availability.NewInterval(req.StartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}

	if availability.SlotInPast(req.AppointmentDate, slot.Start, now) {
		return nil, ErrSlotInPast
	}

	// Рабочие часы даты
	schedule, err := uc.professionalRepo.GetWeeklySchedule(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	working := availability.ResolveWorkingHours(schedule, req.AppointmentDate)
	if working == nil {
		return nil, ErrProfessionalClosed
	}
	if !working.Contains(slot) {
		return nil, ErrOutsideWorkingHours
	}

	// Перерывы дня недели
	breaks, err := uc.professionalRepo.GetBreaks(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get breaks: %v", err)
		return nil, fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
	}
	dayBreaks := availability.ResolveBreaks(breaks, int(req.AppointmentDate.Weekday()))

	// Записи даты; внутри транзакции выборка идёт с FOR UPDATE
	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, domain.AppointmentsFilter{
		ProfessionalID: req.ProfessionalID,
		StartDate:      &req.AppointmentDate,
		EndDate:        &req.AppointmentDate,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if availability.IntervalBlocked(slot, dayBreaks, appointments, nil) {
		return nil, ErrSlotConflict
	}

	appt := &domain.Appointment{
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		StartTime:       slot.Start,
		EndTime:         slot.End,
		Status:          initialStatus(req),
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		Notes:           req.Notes,
	}

	// Денормализация названия и цены услуги: история записи не меняется
	// при последующем редактировании каталога
	if service != nil {
		appt.ServiceName = &service.Name
		appt.ServicePrice = service.Price
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	return created, nil
}
