package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	catalogRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/catalog"
	professionalRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/professional"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/ptr"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// 2025-11-03 понедельник
var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.nextID++
	appt.ID = r.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	r.appointments = append(r.appointments, appt)
	return appt, nil
}

func (r *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.StartDate != nil && a.AppointmentDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && a.AppointmentDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
	schedule     []domain.WeeklyScheduleEntry
	breaks       []domain.Break
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	if r.professional == nil || r.professional.ID != id {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return r.professional, nil
}

func (r *fakeProfessionalRepo) GetWeeklySchedule(_ context.Context, _ int64) ([]domain.WeeklyScheduleEntry, error) {
	return r.schedule, nil
}

func (r *fakeProfessionalRepo) GetBreaks(_ context.Context, _ int64) ([]domain.Break, error) {
	return r.breaks, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// failingTxManager имитирует обрыв сериализуемой транзакции на коммите
type failingTxManager struct {
	commitErr error
}

func (m *failingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

// serialTxManager пропускает транзакции по одной, как это делает
// SERIALIZABLE с FOR UPDATE на пересекающихся строках
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo *fakeAppointmentRepo, proRepo *fakeProfessionalRepo, svcRepo *fakeServiceRepo) *UseCase {
	uc := NewUseCase(apptRepo, proRepo, svcRepo, &fakeTxManager{}, &nopLogger{})
	// неделя до тестовой даты, все слоты в будущем
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}
	return uc
}

func defaultFixture() (*fakeAppointmentRepo, *fakeProfessionalRepo, *fakeServiceRepo) {
	apptRepo := &fakeAppointmentRepo{}
	proRepo := &fakeProfessionalRepo{
		professional: &domain.Professional{
			ID:                     1,
			DisplayName:            "Анна",
			Timezone:               "UTC",
			DefaultDurationMinutes: 30,
		},
		schedule: []domain.WeeklyScheduleEntry{
			{ProfessionalID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		},
	}
	svcRepo := &fakeServiceRepo{services: map[int64]*domain.Service{
		10: {ID: 10, ProfessionalID: 1, Name: "Консультация", DurationMinutes: 60, Price: ptr.Ptr(50.0)},
	}}
	return apptRepo, proRepo, svcRepo
}

func createReq(start string) *Request {
	return &Request{
		ProfessionalID:  1,
		AppointmentDate: monday,
		StartTime:       types.TimeString(start),
		ClientName:      "Иван Петров",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	resp, err := uc.Execute(context.Background(), createReq("09:00"))
	require.NoError(t, err)

	appt := resp.Appointment
	assert.Equal(t, int64(1), appt.ID)
	assert.Equal(t, types.TimeString("09:00"), appt.StartTime)
	assert.Equal(t, types.TimeString("09:30"), appt.EndTime)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
	assert.Nil(t, appt.ServiceName)
}

func TestExecute_DoubleBookingRejected(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	_, err := uc.Execute(context.Background(), createReq("10:00"))
	require.NoError(t, err)

	// Второе бронирование того же слота обязано упасть на commit-time проверке
	req := createReq("10:00")
	req.ClientName = "Пётр Иванов"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Пересекающийся, но не совпадающий слот тоже конфликтует
	_, err = uc.Execute(context.Background(), createReq("09:45"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	resp, err := uc.Execute(context.Background(), createReq("10:00"))
	require.NoError(t, err)

	resp.Appointment.Status = domain.StatusCancelled

	_, err = uc.Execute(context.Background(), createReq("10:00"))
	assert.NoError(t, err)
}

func TestExecute_ServiceDurationAndDenormalization(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	req := createReq("09:00")
	req.ServiceID = ptr.Ptr(int64(10))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	appt := resp.Appointment
	assert.Equal(t, types.TimeString("10:00"), appt.EndTime)
	require.NotNil(t, appt.ServiceName)
	assert.Equal(t, "Консультация", *appt.ServiceName)
	require.NotNil(t, appt.ServicePrice)
	assert.Equal(t, 50.0, *appt.ServicePrice)
}

func TestExecute_ServiceOfAnotherProfessional(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	svcRepo.services[20] = &domain.Service{ID: 20, ProfessionalID: 2, Name: "Чужая услуга", DurationMinutes: 30}
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	req := createReq("09:00")
	req.ServiceID = ptr.Ptr(int64(20))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	// 11:45 + 30 минут вылезает за конец рабочего дня 12:00
	_, err := uc.Execute(context.Background(), createReq("11:45"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	_, err = uc.Execute(context.Background(), createReq("08:00"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_ClosedDay(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	req := createReq("10:00")
	req.AppointmentDate = monday.AddDate(0, 0, 1) // вторник без расписания

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalClosed)
}

func TestExecute_BreakBlocksSlot(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	proRepo.breaks = []domain.Break{
		{ProfessionalID: 1, DayOfWeek: 1, StartTime: "10:00", EndTime: "10:30", Kind: domain.BreakKindBreak},
	}
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	_, err := uc.Execute(context.Background(), createReq("10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = uc.Execute(context.Background(), createReq("10:30"))
	assert.NoError(t, err)
}

func TestExecute_SlotInPast(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)
	uc.timeProvider = &fixedTimeProvider{now: monday.Add(10*time.Hour + 30*time.Minute)}

	// 10:00 уже прошло относительно 10:30 того же дня
	_, err := uc.Execute(context.Background(), createReq("10:00"))
	assert.ErrorIs(t, err, ErrSlotInPast)

	// 11:00 ещё впереди
	_, err = uc.Execute(context.Background(), createReq("11:00"))
	assert.NoError(t, err)
}

func TestExecute_SerializationFailureMapsToSlotConflict(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	txm := &failingTxManager{
		commitErr: fmt.Errorf("commit tx: %w", &pq.Error{Code: "40001"}),
	}
	uc := NewUseCase(apptRepo, proRepo, svcRepo, txm, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}

	// Postgres откатил транзакцию на коммите: клиент видит конфликт слота
	_, err := uc.Execute(context.Background(), createReq("10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Прочие ошибки коммита не маскируются под конфликт
	txm.commitErr = fmt.Errorf("commit tx: %w", &pq.Error{Code: "53300"})
	_, err = uc.Execute(context.Background(), createReq("10:00"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConcurrentBookingSameSlot(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := NewUseCase(apptRepo, proRepo, svcRepo, &serialTxManager{}, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}

	// Две одновременные брони одного слота: ровно одна проходит,
	// вторая падает на commit-time перепроверке
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := createReq("10:00")
			req.ClientName = fmt.Sprintf("Клиент %d", i+1)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], ErrSlotConflict)
	} else {
		assert.ErrorIs(t, errs[0], ErrSlotConflict)
		assert.NoError(t, errs[1])
	}
	assert.Len(t, apptRepo.appointments, 1)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	req := createReq("10:00")
	req.ProfessionalID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InitialStatus(t *testing.T) {
	apptRepo, proRepo, svcRepo := defaultFixture()
	uc := newTestUseCase(apptRepo, proRepo, svcRepo)

	req := createReq("09:00")
	req.Status = "draft"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, resp.Appointment.Status)

	// draft занимает слот наравне с confirmed
	_, err = uc.Execute(context.Background(), createReq("09:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	req = createReq("10:00")
	req.Status = "completed"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
