package domain

import (
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/pkg/types"
)

// WeeklyScheduleEntry represents recurring working hours for one day of week.
// One entry per day per professional; a missing entry or IsAvailable=false
// means the professional is closed that day.
type WeeklyScheduleEntry struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	StartTime      types.TimeString
	EndTime        types.TimeString
	IsAvailable    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BreakKind вид недоступности внутри рабочего дня
type BreakKind string

const (
	BreakKindBreak          BreakKind = "break"
	BreakKindUnavailability BreakKind = "unavailability"
)

// Break represents a recurring weekly break or unavailability window.
// Breaks are not date-specific: the same window recurs every week.
// Both kinds block slots identically; the kind only matters for display.
type Break struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	StartTime      types.TimeString
	EndTime        types.TimeString
	Kind           BreakKind
	CreatedAt      time.Time
}

// Professional represents a service professional whose calendar is managed here
type Professional struct {
	ID          int64
	DisplayName string
	// Timezone фиксированная IANA-таймзона специалиста; все civil-даты и
	// wall-clock времена интерпретируются в ней
	Timezone string
	// DefaultDurationMinutes длительность записи для специалистов без услуг
	DefaultDurationMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Location возвращает *time.Location специалиста
func (p *Professional) Location() (*time.Location, error) {
	return time.LoadLocation(p.Timezone)
}
