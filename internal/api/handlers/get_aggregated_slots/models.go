package get_aggregated_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/dshmn/ProBook-AvailabilityService/internal/domain"
	getAggregatedSlots "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/get_aggregated_slots"
)

// AggregatedSlotsResponse HTTP response model
type AggregatedSlotsResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Slots []AggregatedSlot `json:"slots"`
}

// AggregatedSlot объединённый слот с назначенным специалистом
type AggregatedSlot struct {
	Date                   string `json:"date"`
	StartTime              string `json:"startTime"`
	EndTime                string `json:"endTime"`
	AssignedProfessionalID int64  `json:"assignedProfessionalId"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// professionalIds передаются списком через запятую: "3,1,7".
func ToUseCaseRequest(idsStr, fromStr, toStr, serviceIDStr string) (*getAggregatedSlots.Request, error) {
	ids := make([]int64, 0)
	for _, part := range strings.Split(idsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to := from
	if toStr != "" {
		to, err = time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
	}

	req := &getAggregatedSlots.Request{
		ProfessionalIDs: ids,
		From:            from,
		To:              to,
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAggregatedSlots.Response) *AggregatedSlotsResponse {
	slots := make([]AggregatedSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AggregatedSlot{
			Date:                   slot.Date.Format(domain.DateFormat),
			StartTime:              slot.StartTime.String(),
			EndTime:                slot.EndTime.String(),
			AssignedProfessionalID: slot.AssignedProfessionalID,
		}
	}

	return &AggregatedSlotsResponse{
		From:  resp.From.Format(domain.DateFormat),
		To:    resp.To.Format(domain.DateFormat),
		Slots: slots,
	}
}
