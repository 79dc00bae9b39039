package cancel_appointment

import (
	"context"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id int64, cancelledBy domain.CancelActor, reason *string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
