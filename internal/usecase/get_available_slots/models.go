package get_available_slots

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// Request модель запроса доступных слотов одного специалиста
type Request struct {
	ProfessionalID int64     // ID специалиста
	From           time.Time // Начало диапазона дат (включительно)
	To             time.Time // Конец диапазона дат (включительно)
	ServiceID      *int64    // ID услуги (опционально, иначе длительность по умолчанию)
	// ExcludeAppointmentID запись, исключаемая из проверки конфликтов.
	// Передаётся при переносе, чтобы собственный слот записи остался доступен.
	ExcludeAppointmentID *int64
}

// Response модель ответа со списком доступных слотов.
// Пустой список - валидный результат, а не ошибка.
type Response struct {
	ProfessionalID int64
	From           time.Time
	To             time.Time
	Slots          []Slot
}

// Slot модель доступного временного слота
type Slot struct {
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}
