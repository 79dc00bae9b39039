package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/ptr"
)

// 2025-11-03 - понедельник
var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func appt(id int64, date time.Time, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ProfessionalID:  1,
		AppointmentDate: date,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		Status:          status,
	}
}

func brk(day int, start, end string) domain.Break {
	return domain.Break{
		ProfessionalID: 1,
		DayOfWeek:      day,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		Kind:           domain.BreakKindBreak,
	}
}

func starts(ivs []Interval) []string {
	out := make([]string, 0, len(ivs))
	for _, i := range ivs {
		out = append(out, i.Start.String())
	}
	return out
}

func TestFilterConflicts_BreakRule(t *testing.T) {
	candidates := GenerateCandidates(iv("09:00", "12:00"), 30, 0)

	// перерыв 10:00-10:30 убирает только слот 10:00:
	// 09:30 заканчивается в 10:00 (не пересекается),
	// 10:30 начинается на конце перерыва (не пересекается)
	got := FilterConflicts(candidates, ConflictContext{
		Date:   monday,
		Now:    monday.AddDate(0, 0, -7), // заведомо раньше
		Breaks: []domain.Break{brk(1, "10:00", "10:30")},
	})

	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, starts(got))
}

func TestFilterConflicts_AppointmentRule(t *testing.T) {
	candidates := GenerateCandidates(iv("09:00", "12:00"), 30, 0)

	cases := []struct {
		name   string
		status domain.AppointmentStatus
		blocks bool
	}{
		{name: "confirmed blocks", status: domain.StatusConfirmed, blocks: true},
		{name: "pending blocks", status: domain.StatusPending, blocks: true},
		{name: "draft blocks", status: domain.StatusDraft, blocks: true},
		{name: "completed blocks", status: domain.StatusCompleted, blocks: true},
		{name: "no_show blocks", status: domain.StatusNoShow, blocks: true},
		{name: "cancelled does not block", status: domain.StatusCancelled, blocks: false},
		{name: "rescheduled does not block", status: domain.StatusRescheduled, blocks: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FilterConflicts(candidates, ConflictContext{
				Date:         monday,
				Now:          monday.AddDate(0, 0, -7),
				Appointments: []*domain.Appointment{appt(1, monday, "09:00", "09:30", c.status)},
			})

			if c.blocks {
				assert.NotContains(t, starts(got), "09:00")
				assert.Len(t, got, len(candidates)-1)
			} else {
				assert.Equal(t, starts(candidates), starts(got))
			}
		})
	}
}

func TestFilterConflicts_PastTimeRule(t *testing.T) {
	candidates := GenerateCandidates(iv("09:00", "12:00"), 30, 0)
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC) // сегодня 10:00

	// сегодня: старт, равный текущему времени, исключается
	today := FilterConflicts(candidates, ConflictContext{Date: monday, Now: now})
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, starts(today))

	// завтра: то же wall-clock время не фильтруется
	tomorrow := FilterConflicts(candidates, ConflictContext{Date: monday.AddDate(0, 0, 1), Now: now})
	assert.Equal(t, starts(candidates), starts(tomorrow))

	// вчера: слотов нет вовсе
	yesterday := FilterConflicts(candidates, ConflictContext{Date: monday.AddDate(0, 0, -1), Now: now})
	assert.Empty(t, yesterday)
}

func TestFilterConflicts_PastTimeRuleAcrossTimezones(t *testing.T) {
	candidates := GenerateCandidates(iv("07:00", "21:00"), 30, 0)

	// Дата запроса парсится как UTC-полночь, а "сейчас" живёт в таймзоне
	// специалиста. Сравнение должно идти по civil-датам, а не по моментам.
	lima := time.FixedZone("UTC-5", -5*60*60)
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	// Специалист в UTC-5, у него сегодня 08:00: будущие слоты того же
	// civil-дня обязаны выжить, прошедшие отфильтроваться
	nowLima := time.Date(2025, 11, 3, 8, 0, 0, 0, lima)
	got := FilterConflicts(candidates, ConflictContext{Date: monday, Now: nowLima})
	require.NotEmpty(t, got)
	assert.NotContains(t, starts(got), "08:00")
	assert.Equal(t, "08:30", got[0].Start.String())
	assert.Contains(t, starts(got), "20:30")

	// Специалист в UTC+9: та же логика с положительным смещением
	nowTokyo := time.Date(2025, 11, 3, 20, 0, 0, 0, tokyo)
	got = FilterConflicts(candidates, ConflictContext{Date: monday, Now: nowTokyo})
	assert.Equal(t, []string{"20:30"}, starts(got))

	// Вчерашняя и завтрашняя civil-даты не зависят от смещения
	assert.Empty(t, FilterConflicts(candidates, ConflictContext{Date: monday.AddDate(0, 0, -1), Now: nowLima}))
	tomorrow := FilterConflicts(candidates, ConflictContext{Date: monday.AddDate(0, 0, 1), Now: nowLima})
	assert.Equal(t, starts(candidates), starts(tomorrow))
}

func TestSlotInPast(t *testing.T) {
	lima := time.FixedZone("UTC-5", -5*60*60)
	nowLima := time.Date(2025, 11, 3, 8, 0, 0, 0, lima)

	// Сегодняшний будущий слот не в прошлом, даже когда UTC-полночь даты
	// раньше локальной полуночи специалиста
	assert.False(t, SlotInPast(monday, "20:00", nowLima))
	assert.False(t, SlotInPast(monday, "08:30", nowLima))

	// Старт, равный текущему времени или раньше него, в прошлом
	assert.True(t, SlotInPast(monday, "08:00", nowLima))
	assert.True(t, SlotInPast(monday, "07:30", nowLima))

	// Соседние civil-даты
	assert.True(t, SlotInPast(monday.AddDate(0, 0, -1), "23:30", nowLima))
	assert.False(t, SlotInPast(monday.AddDate(0, 0, 1), "00:00", nowLima))
}

func TestFilterConflicts_RescheduleSelfExclusion(t *testing.T) {
	candidates := GenerateCandidates(iv("09:00", "12:00"), 30, 0)
	own := appt(42, monday, "09:00", "09:30", domain.StatusConfirmed)
	other := appt(43, monday, "11:00", "11:30", domain.StatusConfirmed)

	// без исключения оба слота заняты
	got := FilterConflicts(candidates, ConflictContext{
		Date:         monday,
		Now:          monday.AddDate(0, 0, -7),
		Appointments: []*domain.Appointment{own, other},
	})
	assert.NotContains(t, starts(got), "09:00")
	assert.NotContains(t, starts(got), "11:00")

	// при переносе записи 42 её собственный слот снова предлагается
	got = FilterConflicts(candidates, ConflictContext{
		Date:                 monday,
		Now:                  monday.AddDate(0, 0, -7),
		Appointments:         []*domain.Appointment{own, other},
		ExcludeAppointmentID: ptr.Ptr(int64(42)),
	})
	assert.Contains(t, starts(got), "09:00")
	assert.NotContains(t, starts(got), "11:00")
}

func TestIntervalBlocked_NoSurvivorOverlapsBlocker(t *testing.T) {
	// псевдослучайный набор записей: ни один выживший кандидат не должен
	// пересекаться ни с одной блокирующей записью
	appointments := []*domain.Appointment{}
	for i := 0; i < 20; i++ {
		startMin := 8*60 + i*37
		endMin := startMin + 20 + (i%3)*25
		if endMin > 20*60 {
			break
		}
		start, err := types.NewTimeStringFromMinutes(startMin)
		require.NoError(t, err)
		end, err := types.NewTimeStringFromMinutes(endMin)
		require.NoError(t, err)

		status := domain.StatusConfirmed
		if i%4 == 0 {
			status = domain.StatusCancelled // не должна блокировать
		}
		appointments = append(appointments, &domain.Appointment{
			ID:              int64(i + 1),
			AppointmentDate: monday,
			StartTime:       start,
			EndTime:         end,
			Status:          status,
		})
	}

	candidates := GenerateCandidates(iv("08:00", "20:00"), 30, 0)
	surviving := FilterConflicts(candidates, ConflictContext{
		Date:         monday,
		Now:          monday.AddDate(0, 0, -7),
		Appointments: appointments,
	})

	for _, s := range surviving {
		for _, a := range appointments {
			if !a.IsBlocking() {
				continue
			}
			assert.False(t, s.Overlaps(Interval{Start: a.StartTime, End: a.EndTime}),
				"surviving slot %s overlaps blocking appointment %s-%s", s, a.StartTime, a.EndTime)
		}
	}
}
