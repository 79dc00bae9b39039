package get_aggregated_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	professionalRepo "github.com/dshmn/ProBook-AvailabilityService/internal/infra/storage/professional"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// 2025-11-03 понедельник
var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (r *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.ProfessionalID == filter.ProfessionalID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeProfessionalRepo struct {
	professionals map[int64]*domain.Professional
	schedules     map[int64][]domain.WeeklyScheduleEntry
	breaks        map[int64][]domain.Break
}

func (r *fakeProfessionalRepo) GetByID(_ context.Context, id int64) (*domain.Professional, error) {
	pro, ok := r.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return pro, nil
}

func (r *fakeProfessionalRepo) GetWeeklySchedule(_ context.Context, id int64) ([]domain.WeeklyScheduleEntry, error) {
	return r.schedules[id], nil
}

func (r *fakeProfessionalRepo) GetBreaks(_ context.Context, id int64) ([]domain.Break, error) {
	return r.breaks[id], nil
}

type fakeServiceRepo struct{}

func (r *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return &domain.Service{ID: 10, ProfessionalID: 1, Name: "Консультация", DurationMinutes: 30}, nil
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

func mondaySchedule(proID int64, start, end string) []domain.WeeklyScheduleEntry {
	return []domain.WeeklyScheduleEntry{
		{ProfessionalID: proID, DayOfWeek: 1, StartTime: types.TimeString(start), EndTime: types.TimeString(end), IsAvailable: true},
	}
}

func fixture() (*fakeAppointmentRepo, *fakeProfessionalRepo, *UseCase) {
	apptRepo := &fakeAppointmentRepo{}
	proRepo := &fakeProfessionalRepo{
		professionals: map[int64]*domain.Professional{
			1: {ID: 1, DisplayName: "Анна", Timezone: "UTC", DefaultDurationMinutes: 30},
			2: {ID: 2, DisplayName: "Борис", Timezone: "UTC", DefaultDurationMinutes: 30},
		},
		schedules: map[int64][]domain.WeeklyScheduleEntry{
			1: mondaySchedule(1, "09:00", "11:00"),
			2: mondaySchedule(2, "09:00", "11:00"),
		},
		breaks: map[int64][]domain.Break{},
	}

	uc := NewUseCase(apptRepo, proRepo, &fakeServiceRepo{}, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}
	return apptRepo, proRepo, uc
}

func TestExecute_LowestIDWinsSharedSlots(t *testing.T) {
	_, _, uc := fixture()

	// Порядок во входном запросе не важен
	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{2, 1},
		From:            monday,
		To:              monday,
	})
	require.NoError(t, err)

	// Оба работают 09:00-11:00, 4 общих слота, все достаются ID=1
	require.Len(t, resp.Slots, 4)
	for _, slot := range resp.Slots {
		assert.Equal(t, int64(1), slot.AssignedProfessionalID)
	}
}

func TestExecute_BusyRepresentativeFallsBack(t *testing.T) {
	apptRepo, _, uc := fixture()
	apptRepo.appointments = []*domain.Appointment{
		{ID: 1, ProfessionalID: 1, AppointmentDate: monday, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{1, 2},
		From:            monday,
		To:              monday,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	// 09:00 занят у первого специалиста, слот уходит второму
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, int64(2), resp.Slots[0].AssignedProfessionalID)
	assert.Equal(t, int64(1), resp.Slots[1].AssignedProfessionalID)
}

func TestExecute_DisjointSchedulesMerge(t *testing.T) {
	_, proRepo, uc := fixture()
	proRepo.schedules[1] = mondaySchedule(1, "09:00", "10:00")
	proRepo.schedules[2] = mondaySchedule(2, "10:00", "11:00")

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{1, 2},
		From:            monday,
		To:              monday,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, int64(1), resp.Slots[0].AssignedProfessionalID)
	assert.Equal(t, int64(1), resp.Slots[1].AssignedProfessionalID)
	assert.Equal(t, int64(2), resp.Slots[2].AssignedProfessionalID)
	assert.Equal(t, int64(2), resp.Slots[3].AssignedProfessionalID)
}

func TestExecute_Deterministic(t *testing.T) {
	_, _, uc := fixture()

	req := &Request{
		ProfessionalIDs: []int64{2, 1, 2}, // дубликат схлопывается
		From:            monday,
		To:              monday,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_Validation(t *testing.T) {
	_, _, uc := fixture()

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{},
		From:            monday,
		To:              monday,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]int64, domain.MaxAggregatedProfessionals+1)
	for i := range tooMany {
		tooMany[i] = int64(i + 1)
	}
	_, err = uc.Execute(context.Background(), &Request{
		ProfessionalIDs: tooMany,
		From:            monday,
		To:              monday,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{1},
		From:            monday,
		To:              monday.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_UnknownProfessional(t *testing.T) {
	_, _, uc := fixture()

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalIDs: []int64{1, 99},
		From:            monday,
		To:              monday,
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
