package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dshmn/ProBook-AvailabilityService/internal/api/handlers"
	"github.com/dshmn/ProBook-AvailabilityService/internal/api/middleware"
	rescheduleAppointment "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgCannotReschedule     = "запись не может быть перенесена"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgProfessionalClosed   = "специалист не работает в выбранную дату"
	msgOutsideWorkingHours  = "слот выходит за пределы рабочих часов"
	msgSlotInPast           = "нельзя перенести запись на прошедшее время"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrInvalidTransition):
			h.logger.Warn("POST /appointments/{id}/reschedule - Cannot reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments/{id}/reschedule - Slot conflict: appointment_id=%d, new_date=%s, new_start=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleAppointment.ErrProfessionalClosed):
			h.logger.Warn("POST /appointments/{id}/reschedule - Professional closed: appointment_id=%d, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgProfessionalClosed)

		case errors.Is(err, rescheduleAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments/{id}/reschedule - Outside working hours: appointment_id=%d, new_date=%s, new_start=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, rescheduleAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments/{id}/reschedule - Slot in past: appointment_id=%d, new_date=%s, new_start=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.FromDomainAppointment(result.Appointment)

	h.logger.Info("POST /appointments/{id}/reschedule - Appointment rescheduled successfully: old_id=%d, new_id=%d",
		appointmentID, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
