package create_appointment

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	createAppointment "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/create_appointment"
	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID  int64   `json:"professionalId"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-11-03"
	StartTime       string  `json:"startTime"`       // "10:00"
	ClientName      string  `json:"clientName"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status,omitempty"` // draft|pending|confirmed, по умолчанию confirmed
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ProfessionalID:  r.ProfessionalID,
		ServiceID:       r.ServiceID,
		AppointmentDate: appointmentDate,
		StartTime:       startTime,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		Notes:           r.Notes,
		Status:          r.Status,
	}, nil
}
