package get_aggregated_slots

import (
	"context"

	getAggregatedSlots "github.com/dshmn/ProBook-AvailabilityService/internal/usecase/get_aggregated_slots"
)

type GetAggregatedSlotsUseCase interface {
	Execute(ctx context.Context, req *getAggregatedSlots.Request) (*getAggregatedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
