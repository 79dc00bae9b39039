package reschedule_appointment

import (
	"context"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	MarkRescheduled(ctx context.Context, id int64, rescheduledBy string) error
}

// ProfessionalRepository интерфейс репозитория специалистов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetWeeklySchedule(ctx context.Context, professionalID int64) ([]domain.WeeklyScheduleEntry, error)
	GetBreaks(ctx context.Context, professionalID int64) ([]domain.Break, error)
}

// TxManager интерфейс менеджера транзакций.
// Чтение старой записи, проверка нового слота, пометка rescheduled и
// вставка новой записи атомарны.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
