package availability

import (
	"fmt"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в пределах одних суток
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval создает интервал заданной длительности от начального времени
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, fmt.Errorf("availability: duration must be positive, got %d", durationMinutes)
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// IsValid возвращает true, если интервал непуст (start < end)
func (i Interval) IsValid() bool {
	return i.Start.IsBefore(i.End)
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Граничные случаи (один заканчивается ровно там, где начинается другой)
// пересечением НЕ считаются:
//   - [11:30,12:00) и [11:20,11:40) → пересекаются
//   - [11:30,12:00) и [11:00,11:30) → не пересекаются
//   - [11:30,12:00) и [12:00,12:30) → не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains возвращает true, если other целиком лежит внутри i
func (i Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}

// DurationMinutes длительность интервала в минутах
func (i Interval) DurationMinutes() int {
	return i.End.Minutes() - i.Start.Minutes()
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start, i.End)
}
