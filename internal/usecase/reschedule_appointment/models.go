package reschedule_appointment

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// Request модель запроса переноса записи
type Request struct {
	AppointmentID int64
	// NewDate и NewStartTime целевой слот переноса
	NewDate      time.Time
	NewStartTime types.TimeString
	// RescheduledBy идентификатор инициатора переноса (из заголовка запроса)
	RescheduledBy string
}

// Response модель ответа с новой записью.
// Старая запись остаётся в истории со статусом rescheduled.
type Response struct {
	Appointment *domain.Appointment
}
