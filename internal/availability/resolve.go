package availability

import (
	"sort"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// ResolveWorkingHours возвращает рабочий интервал специалиста на указанную дату
// или nil, если день нерабочий (нет записи в расписании либо isAvailable=false).
// День недели берётся из даты: 0=воскресенье .. 6=суббота.
func ResolveWorkingHours(entries []domain.WeeklyScheduleEntry, date time.Time) *Interval {
	dayOfWeek := int(date.Weekday())

	for _, entry := range entries {
		if entry.DayOfWeek != dayOfWeek {
			continue
		}
		if !entry.IsAvailable {
			return nil
		}

		iv := Interval{Start: entry.StartTime, End: entry.EndTime}
		if !iv.IsValid() {
			return nil
		}
		return &iv
	}

	return nil
}

// ResolveBreaks возвращает перерывы специалиста, действующие в указанный день
// недели, отсортированные по времени начала. Перерывы еженедельные и не
// привязаны к конкретной дате. Оба вида (break, unavailability) блокируют
// слоты одинаково.
func ResolveBreaks(breaks []domain.Break, dayOfWeek int) []domain.Break {
	active := make([]domain.Break, 0)
	for _, b := range breaks {
		if b.DayOfWeek == dayOfWeek {
			active = append(active, b)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].StartTime == active[j].StartTime {
			return active[i].EndTime.IsBefore(active[j].EndTime)
		}
		return active[i].StartTime.IsBefore(active[j].StartTime)
	})

	return active
}
