package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dshmn/ProBook-AvailabilityService/internal/api/handlers"
	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	"github.com/dshmn/ProBook-AvailabilityService/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidQueryParams    = "некорректные параметры запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
// Query params: from, to (YYYY-MM-DD), status, includeInactive (true|false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()

	var from, to *time.Time
	if fromStr := query.Get("from"); fromStr != "" {
		parsed, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		from = &parsed
	}
	if toStr := query.Get("to"); toStr != "" {
		parsed, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		to = &parsed
	}

	var status *domain.AppointmentStatus
	if statusStr := query.Get("status"); statusStr != "" {
		parsed, err := domain.ParseAppointmentStatus(statusStr)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		status = &parsed
	}

	includeInactive := query.Get("includeInactive") == "true"

	appts, err := h.service.GetProfessionalAppointments(r.Context(), professionalID, from, to, status, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Appointments retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(appts))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAppointments(appts))
}
