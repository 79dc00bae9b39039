package create_appointment

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// Request модель запроса создания записи
type Request struct {
	ProfessionalID  int64
	ServiceID       *int64 // NULL = запись без услуги, длительность по умолчанию
	AppointmentDate time.Time
	StartTime       types.TimeString
	ClientName      string
	ClientPhone     *string
	Notes           *string
	// Status начальный статус; пустая строка = confirmed
	Status string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
