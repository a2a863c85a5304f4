package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// GetAvailableLoadsQueryHandler assembles a hauler's personal load board.
//
// This query goes through the repositories instead of raw SQL: the board
// depends on the hauler's capacity ledger and on exact distance checks,
// which live in the domain. The matcher derives the filter from the
// hauler's current state and the repository narrows the candidates.
type GetAvailableLoadsQueryHandler struct {
	loadRepository   ports.LoadRepository
	haulerRepository ports.HaulerRepository
	matcher          services.LoadMatcher
}

// NewGetAvailableLoadsQueryHandler creates a handler for the load board.
func NewGetAvailableLoadsQueryHandler(
	loadRepository ports.LoadRepository,
	haulerRepository ports.HaulerRepository,
) GetAvailableLoadsQueryHandler {
	return GetAvailableLoadsQueryHandler{
		loadRepository:   loadRepository,
		haulerRepository: haulerRepository,
		matcher:          services.NewLoadMatcher(),
	}
}

// Handle executes the query. Returns posted loads the hauler's vehicle can
// serve, newest first.
func (h GetAvailableLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableLoadsQuery,
) ([]LoadSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.haulerRepository.Get(ctx, query.HaulerID())
	if err != nil {
		return nil, err
	}

	filter, err := h.matcher.BuildFilter(aggregate, query.RadiusKm(), query.Limit())
	if err != nil {
		return nil, err
	}

	loads, err := h.loadRepository.FindAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]LoadSummary, 0, len(loads))
	for _, l := range loads {
		summaries = append(summaries, summaryFromAggregate(l))
	}

	return summaries, nil
}

func summaryFromAggregate(l *load.Load) LoadSummary {
	details := l.Details()

	var createdAt time.Time
	if history := l.History(); len(history) > 0 {
		createdAt = history[0].Timestamp()
	}

	return LoadSummary{
		ID:                  l.ID(),
		Origin:              details.Origin,
		Destination:         details.Destination,
		CargoType:           details.CargoType,
		Weight:              details.Weight,
		Price:               details.Price,
		VehicleTypeRequired: details.VehicleTypeRequired,
		Mode:                details.Mode,
		Status:              l.Status(),
		AssignedTo:          l.AssignedTo(),
		PickupDate:          details.PickupDate,
		CreatedAt:           createdAt,
	}
}
