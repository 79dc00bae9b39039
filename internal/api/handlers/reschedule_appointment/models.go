package reschedule_appointment

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	rescheduleAppointment "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/reschedule_appointment"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewDate      string `json:"newDate"`      // "2025-11-04"
	NewStartTime string `json:"newStartTime"` // "14:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64, rescheduledBy string) (*rescheduleAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		NewDate:       newDate,
		NewStartTime:  newStartTime,
		RescheduledBy: rescheduledBy,
	}, nil
}
