package domain

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// TimeSlot represents a bookable time slot for one professional.
// Slots are derived, never persisted: they are recomputed on every
// availability query because appointments and breaks change between queries.
type TimeSlot struct {
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// AggregatedSlot represents a merged slot in "any professional" mode.
// ProfessionalID is the single representative professional backing this time,
// so a booking can be assigned without re-querying availability.
type AggregatedSlot struct {
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	ProfessionalID int64
}
