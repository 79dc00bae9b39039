package get_aggregated_slots

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// Request модель запроса объединённой сетки "любой свободный специалист"
type Request struct {
	ProfessionalIDs []int64
	From            time.Time
	To              time.Time
	ServiceID       *int64 // опционально; определяет длительность слота для всех
}

// Response модель ответа с объединённой сеткой слотов
type Response struct {
	From  time.Time
	To    time.Time
	Slots []Slot
}

// Slot объединённый слот с назначенным специалистом.
// AssignedProfessionalID - единственный представитель на это время:
// бронирование можно оформить сразу, без повторного запроса доступности.
type Slot struct {
	Date                   time.Time
	StartTime              types.TimeString
	EndTime                types.TimeString
	AssignedProfessionalID int64
}
