package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

func scheduleEntry(day int, start, end string, available bool) domain.WeeklyScheduleEntry {
	return domain.WeeklyScheduleEntry{
		ProfessionalID: 1,
		DayOfWeek:      day,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		IsAvailable:    available,
	}
}

func TestComputeRange(t *testing.T) {
	// 2025-11-03 понедельник, 2025-11-04 вторник, 2025-11-05 среда
	schedule := []domain.WeeklyScheduleEntry{
		scheduleEntry(1, "09:00", "12:00", true),  // понедельник
		scheduleEntry(2, "14:00", "16:00", true),  // вторник
		scheduleEntry(3, "09:00", "18:00", false), // среда закрыта
	}

	in := RangeInput{
		ProfessionalID:  1,
		From:            monday,
		To:              monday.AddDate(0, 0, 2),
		Now:             monday.AddDate(0, 0, -7),
		Schedule:        schedule,
		DurationMinutes: 30,
	}

	slots := ComputeRange(in)

	// понедельник 6 слотов + вторник 4 слота, среда закрыта
	require.Len(t, slots, 10)

	// упорядоченность: по дате, затем по времени начала
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if prev.Date.Equal(cur.Date) {
			assert.True(t, prev.StartTime.IsBefore(cur.StartTime))
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}

	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), slots[5].StartTime)
	assert.Equal(t, types.TimeString("14:00"), slots[6].StartTime)
	assert.Equal(t, types.TimeString("15:30"), slots[9].StartTime)

	for _, s := range slots {
		assert.Equal(t, int64(1), s.ProfessionalID)
	}
}

func TestComputeRange_Idempotent(t *testing.T) {
	in := RangeInput{
		ProfessionalID: 1,
		From:           monday,
		To:             monday.AddDate(0, 0, 6),
		Now:            monday.Add(10 * time.Hour),
		Schedule: []domain.WeeklyScheduleEntry{
			scheduleEntry(1, "09:00", "18:00", true),
			scheduleEntry(3, "09:00", "13:00", true),
			scheduleEntry(5, "10:00", "15:00", true),
		},
		Breaks: []domain.Break{brk(1, "13:00", "14:00")},
		Appointments: []*domain.Appointment{
			appt(1, monday, "09:00", "09:30", domain.StatusConfirmed),
			appt(2, monday.AddDate(0, 0, 2), "10:00", "10:30", domain.StatusCancelled),
		},
		DurationMinutes: 30,
	}

	first := ComputeRange(in)
	second := ComputeRange(in)

	assert.Equal(t, first, second, "повторный расчёт с теми же данными обязан дать тот же результат")
}

func TestComputeRange_NoScheduleConfigured(t *testing.T) {
	in := RangeInput{
		ProfessionalID:  1,
		From:            monday,
		To:              monday.AddDate(0, 0, 13),
		Now:             monday,
		Schedule:        nil, // расписание не настроено
		DurationMinutes: 30,
	}

	slots := ComputeRange(in)
	// отсутствие расписания - не ошибка, а пустой список
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeDay_CombinedRules(t *testing.T) {
	in := RangeInput{
		ProfessionalID: 1,
		Now:            monday.Add(9*time.Hour + 40*time.Minute), // сегодня 09:40
		Schedule:       []domain.WeeklyScheduleEntry{scheduleEntry(1, "09:00", "12:00", true)},
		Breaks:         []domain.Break{brk(1, "10:00", "10:30")},
		Appointments: []*domain.Appointment{
			appt(1, monday, "11:00", "11:30", domain.StatusConfirmed),
		},
		DurationMinutes: 30,
	}

	slots := ComputeDay(in, monday)

	// 09:00, 09:30 - прошедшее время; 10:00 - перерыв; 11:00 - запись
	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.StartTime.String())
	}
	assert.Equal(t, []string{"10:30", "11:30"}, got)
}

func TestComputeDay_BreakOnOtherWeekdayIgnored(t *testing.T) {
	in := RangeInput{
		ProfessionalID:  1,
		Now:             monday.AddDate(0, 0, -7),
		Schedule:        []domain.WeeklyScheduleEntry{scheduleEntry(1, "09:00", "11:00", true)},
		Breaks:          []domain.Break{brk(2, "09:00", "11:00")}, // вторник, не влияет
		DurationMinutes: 30,
	}

	slots := ComputeDay(in, monday)
	assert.Len(t, slots, 4)
}
