package get_available_slots

import (
	"fmt"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	if req.From.After(req.To) {
		return fmt.Errorf("%w: from is after to", ErrInvalidRange)
	}

	days := int(req.To.Sub(req.From).Hours()/24) + 1
	if days > domain.MaxSlotRangeDays {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, domain.MaxSlotRangeDays)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID <= 0 {
		return fmt.Errorf("%w: excludeAppointmentID must be positive", ErrInvalidInput)
	}

	return nil
}

// resolveDuration определяет длину слота и буфер.
// С услугой - её длительность и буфер; без услуги - длительность
// специалиста по умолчанию и нулевой буфер.
func resolveDuration(service *domain.Service, professional *domain.Professional) (duration, buffer int, err error) {
	if service != nil {
		if service.DurationMinutes <= 0 {
			return 0, 0, fmt.Errorf("%w: service duration must be positive", ErrInvalidRange)
		}
		return service.DurationMinutes, service.BufferMinutes, nil
	}

	duration = professional.DefaultDurationMinutes
	if duration <= 0 {
		duration = domain.DefaultAppointmentDurationMinutes
	}
	return duration, domain.DefaultBufferMinutes, nil
}
