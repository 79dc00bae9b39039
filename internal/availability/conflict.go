package availability

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// ConflictContext контекст фильтрации кандидатов для одной даты
type ConflictContext struct {
	// Date civil-дата, на которую сгенерированы кандидаты
	Date time.Time
	// Now текущее время в таймзоне специалиста (инжектится явно,
	// ambient-чтение системных часов запрещено)
	Now time.Time
	// Breaks перерывы, уже отобранные для дня недели даты
	Breaks []domain.Break
	// Appointments записи на эту дату (любые статусы, фильтрация по
	// блокирующим статусам происходит здесь)
	Appointments []*domain.Appointment
	// ExcludeAppointmentID запись, исключаемая из проверки конфликтов.
	// Используется при переносе: собственный слот переносимой записи
	// должен остаться среди предлагаемых вариантов.
	ExcludeAppointmentID *int64
}

// FilterConflicts убирает из кандидатов занятые и прошедшие слоты.
// Правила применяются по порядку: прошедшее время, перерывы, записи.
// Порядок выживших кандидатов сохраняется (по возрастанию).
func FilterConflicts(candidates []Interval, cc ConflictContext) []Interval {
	// Дата целиком в прошлом - слотов нет
	if civilBefore(cc.Date, cc.Now) {
		return []Interval{}
	}

	isToday := sameDay(cc.Date, cc.Now)
	nowTime := types.NewTimeString(cc.Now)

	surviving := make([]Interval, 0, len(candidates))
	for _, candidate := range candidates {
		// Прошедшее время: только для сегодняшней даты, будущие даты
		// по времени суток не фильтруются
		if isToday && !candidate.Start.IsAfter(nowTime) {
			continue
		}

		if IntervalBlocked(candidate, cc.Breaks, cc.Appointments, cc.ExcludeAppointmentID) {
			continue
		}

		surviving = append(surviving, candidate)
	}

	return surviving
}

// IntervalBlocked проверяет, занят ли интервал перерывом или записью.
// Используется и при построении сетки слотов, и при commit-time проверке
// бронирования - это единственная реализация правила конфликта.
func IntervalBlocked(iv Interval, breaks []domain.Break, appointments []*domain.Appointment, excludeAppointmentID *int64) bool {
	for _, b := range breaks {
		if iv.Overlaps(Interval{Start: b.StartTime, End: b.EndTime}) {
			return true
		}
	}

	for _, a := range appointments {
		// cancelled и rescheduled записи слот не занимают
		if !a.IsBlocking() {
			continue
		}
		if excludeAppointmentID != nil && a.ID == *excludeAppointmentID {
			continue
		}
		if iv.Overlaps(Interval{Start: a.StartTime, End: a.EndTime}) {
			return true
		}
	}

	return false
}

// SlotInPast проверяет одну пару (дата, время начала) по тому же правилу,
// что и фильтрация сетки: прошлая дата - всегда в прошлом, сегодняшняя -
// если время начала не строго позже текущего.
func SlotInPast(date time.Time, start types.TimeString, now time.Time) bool {
	if civilBefore(date, now) {
		return true
	}
	if sameDay(date, now) && !start.IsAfter(types.NewTimeString(now)) {
		return true
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// civilBefore сравнивает civil-даты покомпонентно. Сравнение моментов
// (полночь к полночи) здесь некорректно: Date приходит как UTC-полночь,
// а Now в таймзоне специалиста, и для отрицательных смещений сегодняшняя
// UTC-полночь наступает раньше локальной.
func civilBefore(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
