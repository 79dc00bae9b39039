package handlers

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// AppointmentResponse HTTP модель записи, общая для всех handlers
type AppointmentResponse struct {
	ID                 int64    `json:"id"`
	ProfessionalID     int64    `json:"professionalId"`
	ServiceID          *int64   `json:"serviceId,omitempty"`
	AppointmentDate    string   `json:"appointmentDate"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	Status             string   `json:"status"`
	ServiceName        *string  `json:"serviceName,omitempty"`
	ServicePrice       *float64 `json:"servicePrice,omitempty"`
	ClientName         string   `json:"clientName"`
	ClientPhone        *string  `json:"clientPhone,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CancelledBy        *string  `json:"cancelledBy,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	RescheduledFromID  *int64   `json:"rescheduledFromId,omitempty"`
	RescheduledBy      *string  `json:"rescheduledBy,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromDomainAppointment конвертирует доменную запись в HTTP модель
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 a.ID,
		ProfessionalID:     a.ProfessionalID,
		ServiceID:          a.ServiceID,
		AppointmentDate:    a.AppointmentDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		ServicePrice:       a.ServicePrice,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		RescheduledFromID:  a.RescheduledFromID,
		RescheduledBy:      a.RescheduledBy,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}

	if a.CancelledBy != nil {
		actor := string(*a.CancelledBy)
		resp.CancelledBy = &actor
	}
	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointments конвертирует список доменных записей
func FromDomainAppointments(appts []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(appts))
	for i, a := range appts {
		out[i] = FromDomainAppointment(a)
	}
	return out
}
