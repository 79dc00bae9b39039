package get_professional_appointments

import (
	"context"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

type AppointmentService interface {
	GetProfessionalAppointments(ctx context.Context, professionalID int64, from, to *time.Time, status *domain.AppointmentStatus, includeInactive bool) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
