package domain

import "time"

// Service represents a bookable service offered by a professional.
// Duration determines the slot length, duration+buffer determines the stride
// between consecutive candidate slot start times.
type Service struct {
	ID              int64
	ProfessionalID  int64
	Name            string
	DurationMinutes int
	BufferMinutes   int
	Price           *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StrideMinutes возвращает шаг между началами соседних слотов
func (s *Service) StrideMinutes() int {
	return s.DurationMinutes + s.BufferMinutes
}
