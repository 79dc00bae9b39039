package availability

import (
	"sort"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// Aggregate объединяет слоты нескольких специалистов в одну сетку для режима
// "любой свободный специалист". Для каждой пары (дата, время) остаётся ровно
// один представитель: первый встреченный во входном порядке. Вызывающая
// сторона обязана передавать слоты в порядке возрастания ID специалистов -
// тогда выбор представителя детерминирован.
// Результат упорядочен по дате, затем по времени начала.
func Aggregate(slots []domain.TimeSlot) []domain.AggregatedSlot {
	type slotKey struct {
		date  string
		start string
	}

	seen := make(map[slotKey]struct{}, len(slots))
	merged := make([]domain.AggregatedSlot, 0, len(slots))

	for _, s := range slots {
		key := slotKey{
			date:  s.Date.Format(domain.DateFormat),
			start: s.StartTime.String(),
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		merged = append(merged, domain.AggregatedSlot{
			Date:           s.Date,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			ProfessionalID: s.ProfessionalID,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		if !sameDay(merged[i].Date, merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		return merged[i].StartTime.IsBefore(merged[j].StartTime)
	})

	return merged
}
