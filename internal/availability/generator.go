package availability

import "github.com/dshmn/ProBook-AvailabilityService/pkg/types"

// GenerateCandidates генерирует кандидатов слотов внутри рабочего интервала.
// Начала слотов идут с фиксированным шагом duration+buffer от начала рабочего
// дня; каждый кандидат имеет длину duration. Последний кандидат обязан целиком
// помещаться в рабочие часы (cursor+duration <= workEnd, строго): слот,
// вылезающий за закрытие даже частично, не генерируется.
// Результат упорядочен по возрастанию времени начала.
func GenerateCandidates(working Interval, durationMinutes, bufferMinutes int) []Interval {
	if durationMinutes <= 0 || bufferMinutes < 0 || !working.IsValid() {
		return nil
	}

	stride := durationMinutes + bufferMinutes
	workStart := working.Start.Minutes()
	workEnd := working.End.Minutes()

	candidates := make([]Interval, 0, (workEnd-workStart)/stride+1)
	for cursor := workStart; cursor+durationMinutes <= workEnd; cursor += stride {
		candidates = append(candidates, Interval{
			Start: minutesToTime(cursor),
			End:   minutesToTime(cursor + durationMinutes),
		})
	}

	return candidates
}

// minutesToTime конвертирует минуты с начала суток в TimeString.
// Вызывается только со значениями внутри валидного рабочего интервала,
// поэтому выход за границу суток невозможен.
func minutesToTime(m int) types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(m)
	return ts
}
