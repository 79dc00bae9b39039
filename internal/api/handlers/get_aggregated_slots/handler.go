package get_aggregated_slots

import (
	"errors"
	"net/http"

	"github.com/dshmn/ProBook-AvailabilityService/internal/api/handlers"
	getAggregatedSlots "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/get_aggregated_slots"
)

const (
	msgMissingProfessionalIDs = "параметр professionalIds обязателен"
	msgMissingFrom            = "параметр from обязателен"
	msgInvalidQueryParams     = "некорректные параметры запроса"
	msgProfessionalNotFound   = "специалист не найден"
	msgServiceNotFound        = "услуга не найдена"
	msgInvalidRange           = "некорректный диапазон дат"
)

type Handler struct {
	useCase GetAggregatedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAggregatedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: professionalIds (required, "1,2,3"), from (required, YYYY-MM-DD), to, serviceId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	idsStr := query.Get("professionalIds")
	if idsStr == "" {
		h.logger.Warn("GET /available-slots - Missing professional IDs")
		handlers.RespondBadRequest(w, msgMissingProfessionalIDs)
		return
	}

	fromStr := query.Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /available-slots - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	useCaseReq, err := ToUseCaseRequest(idsStr, fromStr, query.Get("to"), query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAggregatedSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /available-slots - Professional not found: professional_ids=%s", idsStr)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAggregatedSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: professional_ids=%s", idsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAggregatedSlots.ErrInvalidRange), errors.Is(err, getAggregatedSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid request: professional_ids=%s, error=%v", idsStr, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: professional_ids=%s, error=%v", idsStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Aggregated slots retrieved successfully: professional_ids=%s, slots_count=%d",
		idsStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
