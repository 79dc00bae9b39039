package get_aggregated_slots

import (
	"fmt"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.ProfessionalIDs) == 0 {
		return fmt.Errorf("%w: at least one professionalID is required", ErrInvalidInput)
	}

	if len(req.ProfessionalIDs) > domain.MaxAggregatedProfessionals {
		return fmt.Errorf("%w: at most %d professionals per request", ErrInvalidInput, domain.MaxAggregatedProfessionals)
	}

	for _, id := range req.ProfessionalIDs {
		if id <= 0 {
			return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
		}
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

	return nil
}
